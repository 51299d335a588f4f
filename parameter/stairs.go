package parameter

// Staircase layout in pixel space
const (
	// StepWidth is the horizontal run of one step in pixels
	StepWidth = 90.0
	// StepHeight is the vertical rise of one step in pixels
	StepHeight = 50.0
	// StairMargin is the padding around the whole staircase
	StairMargin = 60.0

	// DefaultSteps is the staircase length when no config overrides it
	DefaultSteps = 3799

	// VisibleSlack is the number of extra steps drawn beyond each viewport edge
	VisibleSlack = 2
)

// Characters
const (
	// CharacterOffsetX separates the carrier from the carried character
	CharacterOffsetX = 10.0
	// CharacterInsetX is the carried character's inset from the step's left edge
	CharacterInsetX = 10.0
	// StepLabelInsetX is the step number's inset from the step's left edge
	StepLabelInsetX = 10.0
)

// Finale
const (
	// FinaleWrapWidth is the character width finale lines are wrapped to
	FinaleWrapWidth = 32
	// FinalePadding is the horizontal padding inside the finale box in columns
	FinalePadding = 4
)
