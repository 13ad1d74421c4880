package domain

// Default profile values for a freshly registered account.
const (
	DefaultCalories = 2000
	DefaultWater    = 8
	DefaultExercise = 30
)

// Profile holds the current metrics for an account. BMI is never stored
// here, only in history entries.
type Profile struct {
	Weight   float64 `json:"weight" db:"weight"`
	Height   int     `json:"height" db:"height"`
	Calories int     `json:"calories" db:"calories"`
	Water    int     `json:"water" db:"water"`
	Exercise int     `json:"exercise" db:"exercise"`
}

// HistoryEntry is an immutable snapshot taken on each save action. Entries
// are kept in insertion order and never merged, so multiple entries for the
// same date are expected.
type HistoryEntry struct {
	Date     string  `json:"date" db:"date"`
	BMI      float64 `json:"bmi" db:"bmi"`
	Calories int     `json:"calories" db:"calories"`
	Water    int     `json:"water" db:"water"`
	Exercise int     `json:"exercise" db:"exercise"`
}

// Account is one user record. Username is the store key and is kept out of
// the serialized value to match the persisted layout.
type Account struct {
	Username     string         `json:"-"`
	PasswordHash string         `json:"password"`
	Profile      Profile        `json:"data"`
	History      []HistoryEntry `json:"history"`
	Remember     bool           `json:"remember"`
}

// Accounts maps username to account, the full persisted state.
type Accounts map[string]*Account

func NewAccount(username, passwordHash string) *Account {
	return &Account{
		Username:     username,
		PasswordHash: passwordHash,
		Profile: Profile{
			Weight:   0,
			Height:   0,
			Calories: DefaultCalories,
			Water:    DefaultWater,
			Exercise: DefaultExercise,
		},
		History:  []HistoryEntry{},
		Remember: false,
	}
}
