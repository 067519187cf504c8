package gamedata

// BuffStat identifies which stat a class's buff move boosts.
type BuffStat string

const (
	BuffDefense BuffStat = "defense"
	BuffSpeed   BuffStat = "speed"
	BuffAttack  BuffStat = "attack"
)

// Short returns the abbreviated stat name used in battle narration.
func (s BuffStat) Short() string {
	switch s {
	case BuffDefense:
		return "DEF"
	case BuffSpeed:
		return "SPD"
	case BuffAttack:
		return "ATK"
	default:
		return "?"
	}
}

// ClassDef defines a fighter class loaded from JSON.
type ClassDef struct {
	ID          string   `json:"id"`          // Unique identifier (e.g., "knight")
	Name        string   `json:"name"`        // Display name (e.g., "Knight")
	HP          int      `json:"hp"`          // Base hit points
	Attack      int      `json:"attack"`      // Base attack power
	Defense     int      `json:"defense"`     // Base defense value
	Speed       int      `json:"speed"`       // Base speed (feeds dodge chance)
	Crit        int      `json:"crit"`        // Critical hit chance in percent
	BuffStat    BuffStat `json:"buffStat"`    // Stat boosted by this class's buff move
	BuffAmount  int      `json:"buffAmount"`  // Magnitude of the buff
	AttackPower int      `json:"attackPower"` // Base damage of the basic attack
	UltPower    int      `json:"ultPower"`    // Base damage of the ultimate
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}
