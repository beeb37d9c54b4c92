package gamedata

// LayoutFile is the embedded casino floor plan.
const LayoutFile = "casino.txt"

// LoadLayout returns the rows of the casino floor plan.
func LoadLayout() ([]string, error) {
	return LoadLines(LayoutFile)
}

// MustLoadLayout returns the floor plan rows, panicking on error.
func MustLoadLayout() []string {
	rows, err := LoadLayout()
	if err != nil {
		panic(err)
	}
	return rows
}
