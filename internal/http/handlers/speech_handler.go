// Speech HTTP handlers.
//
// This file exposes the audio proxy endpoints:
//   - POST /stt-welsh-english  (raw audio body in, transcription out)
//   - POST /tts-welsh          (text in, WAV bytes out)
//
// STT takes the audio as the raw request body with its media type in
// Content-Type, not as multipart or base64 JSON, so recorder blobs can be
// posted directly. TTS answers with the synthesized WAV as the response
// body.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/flipcymru/flipcymru-backend/internal/http/middleware"
	"github.com/flipcymru/flipcymru-backend/internal/speech"
)

// maxAudioBytes caps the accepted STT upload. Recorder clips are a few
// hundred KiB; anything past this is either abuse or a misdirected upload.
const maxAudioBytes = 10 << 20

// STTResponse carries the transcribed text.
type STTResponse struct {
	TranscribedText string `json:"transcribedText" example:"Bore da, sut wyt ti?"`
}

// TTSRequest is the JSON payload for speech synthesis.
type TTSRequest struct {
	Text string `json:"text" binding:"required" example:"Shwmae"`
}

// STTWelshEnglish godoc
// @ID          sttWelshEnglish
// @Summary     Transcribe audio
// @Description Transcribes the posted audio via the generative language
// @Description provider, identifying whether it is Welsh or English.
// @Tags        Speech
// @Accept      audio/webm
// @Produce     json
// @Param       body  body  string  true  "Raw audio bytes"
// @Success     200  {object}  handlers.STTResponse
// @Failure     400  {object}  handlers.ErrorResponse  "No audio provided"
// @Failure     502  {object}  handlers.ErrorResponse  "Provider unavailable"
// @Router      /stt-welsh-english [post]
func (h *Handlers) STTWelshEnglish(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAudioBytes)
	audio, err := c.GetRawData()
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "could not read audio body")
		return
	}
	if len(audio) == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "no audio data provided")
		return
	}

	text, err := h.translator.Transcribe(c.Request.Context(), audio, c.ContentType())
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("transcription failed")
		fail(c, http.StatusBadGateway, ErrCodeProviderUnavailable, "transcription provider unavailable")
		return
	}

	ok(c, http.StatusOK, STTResponse{TranscribedText: text})
}

// TTSWelsh godoc
// @ID          ttsWelsh
// @Summary     Synthesize Welsh speech
// @Description Synthesizes the text with the Welsh voice and returns the
// @Description audio as a WAV response body.
// @Tags        Speech
// @Accept      json
// @Produce     audio/wav
// @Param       body  body  handlers.TTSRequest  true  "Synthesis payload"
// @Success     200  {string}  binary  "WAV audio"
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     502  {object}  handlers.ErrorResponse  "Provider unavailable"
// @Router      /tts-welsh [post]
func (h *Handlers) TTSWelsh(c *gin.Context) {
	var req TTSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "text required")
		return
	}

	audio, err := h.synthesizer.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).Msg("synthesis failed")
		fail(c, http.StatusBadGateway, ErrCodeProviderUnavailable, "speech provider unavailable")
		return
	}

	c.Data(http.StatusOK, speech.ContentTypeWAV, audio)
}
