package models

import "gorm.io/gorm"

const (
	// DefaultLevel is the level a fresh account starts at.
	DefaultLevel = 1
	// DefaultNextLevelThreshold is the EXP needed to go from Lv1 to Lv2.
	DefaultNextLevelThreshold = 100
)

// UserLevel holds a user's accumulated experience. CurrentExp is the EXP
// gathered within the current level, so 0 <= CurrentExp < NextLevelThreshold
// always holds after ApplyExp.
type UserLevel struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"uniqueIndex;not null"`

	Level              int `json:"level" gorm:"default:1"`
	CurrentExp         int `json:"current_exp" gorm:"default:0"`
	NextLevelThreshold int `json:"next_level_threshold" gorm:"default:100"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// NewUserLevel returns the default level record for a user
func NewUserLevel(userID uint) UserLevel {
	return UserLevel{
		UserID:             userID,
		Level:              DefaultLevel,
		CurrentExp:         0,
		NextLevelThreshold: DefaultNextLevelThreshold,
	}
}

// ApplyExp adds the gained EXP and rolls over as many levels as the total
// covers. Each level-up raises the threshold to 1.5x, truncated. Returns
// whether at least one level-up happened.
func (ul *UserLevel) ApplyExp(gained int) bool {
	ul.CurrentExp += gained

	leveledUp := false
	for ul.CurrentExp >= ul.NextLevelThreshold {
		ul.CurrentExp -= ul.NextLevelThreshold
		ul.Level++
		ul.NextLevelThreshold = int(float64(ul.NextLevelThreshold) * 1.5)
		leveledUp = true
	}

	return leveledUp
}
