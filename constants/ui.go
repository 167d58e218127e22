package constants

// Title screen text
const (
	TitleText       = "Definitely Not Rogue"
	HelpText        = "Press r to begin and ` to quit"
	PrevScoreText   = "Previous Game Score: "
	TitleRow        = 5
	HelpRow         = 7
	TitleColOffset  = 12
	HelpColOffset   = 17
	ScoreRowOffset  = 5
	ScoreNumOffset  = 3
	ScoreNumRowDiff = 1
)

// HUD layout, all on row HUDRow
const (
	HUDRow = 1

	HPLabel    = "HP: "
	HPLabelCol = 10
	HPValueCol = 14

	AttackLabel    = "Attack: "
	AttackLabelCol = 35
	AttackValueCol = 43

	DefenseLabel    = "Defense: "
	DefenseLabelCol = 60
	DefenseValueCol = 69

	// NumFieldWidth is the cell width reserved for a HUD number so shrinking values leave no stale digits
	NumFieldWidth = 4
)
