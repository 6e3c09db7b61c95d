// Package domain defines the persistence models for translation history,
// flashcards, flashcard categories, and user profiles. These types are mapped
// to Firestore documents and form the core data layer of the FlipCymru
// backend.
//
// Conventions:
//   - Document IDs are assigned by the store and carried out-of-band
//     (`firestore:"-"`), populated from the document reference on read.
//   - Server-assigned instants use the `serverTimestamp` tag option so the
//     store stamps them at write time; they serialize to RFC3339 UTC on the
//     wire (encoding/json's canonical time.Time form).
//   - JSON field names mirror the frontend contract and must not change.
package domain

import "time"

// ExampleSentence is one usage example attached to a translation: the
// sentence in the target language plus its rendering back in the source
// language.
type ExampleSentence struct {
	OriginalSentence  string `json:"originalSentence"  firestore:"originalSentence"`
	SourceTranslation string `json:"sourceTranslation" firestore:"sourceTranslation"`
}

// Valid reports whether both halves of the example are populated. Partially
// formed items produced by the language model are dropped rather than
// rejected (permissive contract for generative output).
func (e ExampleSentence) Valid() bool {
	return e.OriginalSentence != "" && e.SourceTranslation != ""
}

// HistoryRecord is one completed translation event in a user's bounded
// history ledger. Records are immutable after insertion; they leave the
// collection only through ledger eviction or user-initiated deletion.
//
// Fields:
//   - ID: store-assigned document ID, unique within the user's collection.
//   - Timestamp: server-assigned ordering key (oldest-to-newest); ties are
//     broken by insertion order at the store level.
type HistoryRecord struct {
	ID                string            `json:"id"                          firestore:"-"`
	SourceText        string            `json:"sourceText"                  firestore:"sourceText"`
	TranslatedText    string            `json:"translatedText"              firestore:"translatedText"`
	SourceLang        string            `json:"sourceLang"                  firestore:"sourceLang"`
	TargetLang        string            `json:"targetLang"                  firestore:"targetLang"`
	PronunciationText string            `json:"pronunciationText,omitempty" firestore:"pronunciationText"`
	ExampleSentences  []ExampleSentence `json:"exampleSentences"            firestore:"exampleSentences"`
	Timestamp         time.Time         `json:"timestamp"                   firestore:"timestamp,serverTimestamp"`
}

// Flashcard is an English↔Welsh study card owned by one user. The Welsh
// side, pronunciation guide, and example sentences originate from the
// translation provider at creation time.
type Flashcard struct {
	ID               string            `json:"id"               firestore:"-"`
	English          string            `json:"english"          firestore:"english"`
	Welsh            string            `json:"welsh"            firestore:"welsh"`
	Pronunciation    string            `json:"pronunciation"    firestore:"pronunciation"`
	Category         string            `json:"category"         firestore:"category"`
	Difficulty       string            `json:"difficulty"       firestore:"difficulty"`
	Learnt           bool              `json:"learnt"           firestore:"learnt"`
	CreatedAt        time.Time         `json:"createdAt"        firestore:"createdAt,serverTimestamp"`
	LastReviewed     *time.Time        `json:"lastReviewed"     firestore:"lastReviewed"`
	LearntAt         *time.Time        `json:"learntAt"         firestore:"learntAt"`
	ExampleSentences []ExampleSentence `json:"exampleSentences" firestore:"exampleSentences"`
}

// DefaultDifficulty is assigned to newly created flashcards.
const DefaultDifficulty = "Beginner"

// FlashcardCategory groups a user's flashcards under a display name.
// TotalFlashcards and LearntFlashcards are derived counts computed at read
// time from the flashcard collection; they are never stored.
type FlashcardCategory struct {
	ID               string    `json:"id"               firestore:"-"`
	Name             string    `json:"name"             firestore:"name"`
	UserID           string    `json:"userId"           firestore:"userId"`
	CreatedAt        time.Time `json:"createdAt"        firestore:"createdAt,serverTimestamp"`
	TotalFlashcards  int       `json:"totalFlashcards"  firestore:"-"`
	LearntFlashcards int       `json:"learntFlashcards" firestore:"-"`
}

// LearningPreferences holds per-user study settings seeded at registration.
type LearningPreferences struct {
	Difficulty string `json:"difficulty" firestore:"difficulty"`
	DailyGoal  int    `json:"dailyGoal"  firestore:"dailyGoal"`
}

// LearningStats tracks per-user progress counters.
type LearningStats struct {
	XP            int `json:"xp"            firestore:"xp"`
	Streak        int `json:"streak"        firestore:"streak"`
	WordsMastered int `json:"wordsMastered" firestore:"wordsMastered"`
}

// UserProfile is the per-user profile document created at registration.
type UserProfile struct {
	UID                 string              `json:"uid"                 firestore:"uid"`
	Email               string              `json:"email"               firestore:"email"`
	Username            string              `json:"username"            firestore:"username"`
	CreatedAt           time.Time           `json:"createdAt"           firestore:"createdAt,serverTimestamp"`
	LearningPreferences LearningPreferences `json:"learningPreferences" firestore:"learningPreferences"`
	Stats               LearningStats       `json:"stats"               firestore:"stats"`
}

// NewUserProfile returns the profile document seeded for a freshly
// registered user. CreatedAt is left zero so the store stamps it.
func NewUserProfile(uid, email, username string) UserProfile {
	return UserProfile{
		UID:      uid,
		Email:    email,
		Username: username,
		LearningPreferences: LearningPreferences{
			Difficulty: DefaultDifficulty,
			DailyGoal:  10,
		},
		Stats: LearningStats{},
	}
}
