package permission

// Level is an ordinal role classification gating manual visibility.
type Level int

const (
	LevelGeneral        Level = 1 // 一般
	LevelGeneralAffairs Level = 2 // 総務
	LevelExecutive      Level = 3 // 役職
)

var labelToLevel = map[string]Level{
	"一般": LevelGeneral,
	"総務": LevelGeneralAffairs,
	"役職": LevelExecutive,
}

var levelToLabel = map[Level]string{
	LevelGeneral:        "一般",
	LevelGeneralAffairs: "総務",
	LevelExecutive:      "役職",
}

// LevelOf resolves a role label to its ordinal level. Unknown labels resolve
// to the lowest level rather than failing.
func LevelOf(label string) Level {
	if lvl, ok := labelToLevel[label]; ok {
		return lvl
	}
	return LevelGeneral
}

// Label returns the role label for a level, defaulting to the lowest.
func (l Level) Label() string {
	if label, ok := levelToLabel[l]; ok {
		return label
	}
	return levelToLabel[LevelGeneral]
}

// IsVisible reports whether a user at userLevel may view content that
// requires requiredLevel.
func IsVisible(userLevel, requiredLevel Level) bool {
	return userLevel >= requiredLevel
}
