package tables

// EncounterTreasure is one row of the treasure by encounter table. Values
// are in gold pieces.
type EncounterTreasure struct {
	Level    int
	Low      int
	Moderate int
	Severe   int
	Extreme  int
}

// Value returns the base treasure for d. Trivial encounters award half of
// the low value, rounded down.
func (e EncounterTreasure) Value(d Difficulty) int {
	switch d {
	case DifficultyTrivial:
		return e.Low / 2
	case DifficultyLow:
		return e.Low
	case DifficultyModerate:
		return e.Moderate
	case DifficultySevere:
		return e.Severe
	case DifficultyExtreme:
		return e.Extreme
	default:
		return e.Moderate
	}
}

// PartyTreasure is one row of the party treasure by level table, in gold.
type PartyTreasure struct {
	Level      int
	TotalValue int
	Currency   int
	// CurrencyPerExtraMember is added for each member beyond four.
	CurrencyPerExtraMember int
}

// ItemSlot is a number of permanent items of one level.
type ItemSlot struct {
	Level int `yaml:"level"`
	Count int `yaml:"count"`
}

// CharacterWealth is one row of the character wealth by level table, in
// gold.
type CharacterWealth struct {
	Level          int
	Currency       int
	LumpSum        int
	PermanentItems []ItemSlot
}

var treasureByEncounter = []EncounterTreasure{
	{Level: 1, Low: 13, Moderate: 18, Severe: 26, Extreme: 35},
	{Level: 2, Low: 23, Moderate: 30, Severe: 45, Extreme: 60},
	{Level: 3, Low: 38, Moderate: 50, Severe: 75, Extreme: 100},
	{Level: 4, Low: 65, Moderate: 85, Severe: 130, Extreme: 170},
	{Level: 5, Low: 100, Moderate: 135, Severe: 200, Extreme: 270},
	{Level: 6, Low: 150, Moderate: 200, Severe: 300, Extreme: 400},
	{Level: 7, Low: 220, Moderate: 290, Severe: 440, Extreme: 580},
	{Level: 8, Low: 300, Moderate: 400, Severe: 600, Extreme: 800},
	{Level: 9, Low: 430, Moderate: 570, Severe: 860, Extreme: 1140},
	{Level: 10, Low: 600, Moderate: 800, Severe: 1200, Extreme: 1600},
	{Level: 11, Low: 865, Moderate: 1150, Severe: 1725, Extreme: 2300},
	{Level: 12, Low: 1250, Moderate: 1650, Severe: 2475, Extreme: 3300},
	{Level: 13, Low: 1875, Moderate: 2500, Severe: 3750, Extreme: 5000},
	{Level: 14, Low: 2750, Moderate: 3650, Severe: 5500, Extreme: 7300},
	{Level: 15, Low: 4100, Moderate: 5450, Severe: 8200, Extreme: 10900},
	{Level: 16, Low: 6200, Moderate: 8250, Severe: 12400, Extreme: 16500},
	{Level: 17, Low: 9600, Moderate: 12800, Severe: 19200, Extreme: 25600},
	{Level: 18, Low: 15600, Moderate: 20800, Severe: 31200, Extreme: 41600},
	{Level: 19, Low: 26600, Moderate: 35500, Severe: 53250, Extreme: 71000},
	{Level: 20, Low: 36800, Moderate: 49000, Severe: 73500, Extreme: 98000},
}

var partyTreasureByLevel = []PartyTreasure{
	{Level: 1, TotalValue: 175, Currency: 40, CurrencyPerExtraMember: 10},
	{Level: 2, TotalValue: 300, Currency: 70, CurrencyPerExtraMember: 18},
	{Level: 3, TotalValue: 500, Currency: 120, CurrencyPerExtraMember: 30},
	{Level: 4, TotalValue: 850, Currency: 200, CurrencyPerExtraMember: 50},
	{Level: 5, TotalValue: 1350, Currency: 320, CurrencyPerExtraMember: 80},
	{Level: 6, TotalValue: 2000, Currency: 500, CurrencyPerExtraMember: 125},
	{Level: 7, TotalValue: 2900, Currency: 720, CurrencyPerExtraMember: 180},
	{Level: 8, TotalValue: 4000, Currency: 1000, CurrencyPerExtraMember: 250},
	{Level: 9, TotalValue: 5700, Currency: 1400, CurrencyPerExtraMember: 350},
	{Level: 10, TotalValue: 8000, Currency: 2000, CurrencyPerExtraMember: 500},
	{Level: 11, TotalValue: 11500, Currency: 2800, CurrencyPerExtraMember: 700},
	{Level: 12, TotalValue: 16500, Currency: 4000, CurrencyPerExtraMember: 1000},
	{Level: 13, TotalValue: 25000, Currency: 6000, CurrencyPerExtraMember: 1500},
	{Level: 14, TotalValue: 36500, Currency: 9000, CurrencyPerExtraMember: 2250},
	{Level: 15, TotalValue: 54500, Currency: 13000, CurrencyPerExtraMember: 3250},
	{Level: 16, TotalValue: 82500, Currency: 20000, CurrencyPerExtraMember: 5000},
	{Level: 17, TotalValue: 128000, Currency: 30000, CurrencyPerExtraMember: 7500},
	{Level: 18, TotalValue: 208000, Currency: 48000, CurrencyPerExtraMember: 12000},
	{Level: 19, TotalValue: 355000, Currency: 80000, CurrencyPerExtraMember: 20000},
	{Level: 20, TotalValue: 490000, Currency: 140000, CurrencyPerExtraMember: 35000},
}

var characterWealthByLevel = []CharacterWealth{
	{Level: 1, Currency: 15, LumpSum: 15},
	{Level: 2, Currency: 20, LumpSum: 30, PermanentItems: []ItemSlot{{1, 1}}},
	{Level: 3, Currency: 25, LumpSum: 75, PermanentItems: []ItemSlot{{2, 1}, {1, 2}}},
	{Level: 4, Currency: 30, LumpSum: 140, PermanentItems: []ItemSlot{{3, 1}, {2, 2}, {1, 1}}},
	{Level: 5, Currency: 50, LumpSum: 270, PermanentItems: []ItemSlot{{4, 1}, {3, 2}, {2, 1}, {1, 2}}},
	{Level: 6, Currency: 80, LumpSum: 450, PermanentItems: []ItemSlot{{5, 1}, {4, 2}, {3, 1}, {2, 2}}},
	{Level: 7, Currency: 125, LumpSum: 720, PermanentItems: []ItemSlot{{6, 1}, {5, 2}, {4, 1}, {3, 2}}},
	{Level: 8, Currency: 180, LumpSum: 1100, PermanentItems: []ItemSlot{{7, 1}, {6, 2}, {5, 1}, {4, 2}}},
	{Level: 9, Currency: 250, LumpSum: 1600, PermanentItems: []ItemSlot{{8, 1}, {7, 2}, {6, 1}, {5, 2}}},
	{Level: 10, Currency: 350, LumpSum: 2300, PermanentItems: []ItemSlot{{9, 1}, {8, 2}, {7, 1}, {6, 2}}},
	{Level: 11, Currency: 500, LumpSum: 3200, PermanentItems: []ItemSlot{{10, 1}, {9, 2}, {8, 1}, {7, 2}}},
	{Level: 12, Currency: 700, LumpSum: 4500, PermanentItems: []ItemSlot{{11, 1}, {10, 2}, {9, 1}, {8, 2}}},
	{Level: 13, Currency: 1000, LumpSum: 6400, PermanentItems: []ItemSlot{{12, 1}, {11, 2}, {10, 1}, {9, 2}}},
	{Level: 14, Currency: 1500, LumpSum: 9300, PermanentItems: []ItemSlot{{13, 1}, {12, 2}, {11, 1}, {10, 2}}},
	{Level: 15, Currency: 2250, LumpSum: 13500, PermanentItems: []ItemSlot{{14, 1}, {13, 2}, {12, 1}, {11, 2}}},
	{Level: 16, Currency: 3250, LumpSum: 20000, PermanentItems: []ItemSlot{{15, 1}, {14, 2}, {13, 1}, {12, 2}}},
	{Level: 17, Currency: 5000, LumpSum: 30000, PermanentItems: []ItemSlot{{16, 1}, {15, 2}, {14, 1}, {13, 2}}},
	{Level: 18, Currency: 7500, LumpSum: 45000, PermanentItems: []ItemSlot{{17, 1}, {16, 2}, {15, 1}, {14, 2}}},
	{Level: 19, Currency: 12000, LumpSum: 69000, PermanentItems: []ItemSlot{{18, 1}, {17, 2}, {16, 1}, {15, 2}}},
	{Level: 20, Currency: 20000, LumpSum: 112000, PermanentItems: []ItemSlot{{19, 1}, {18, 2}, {17, 1}, {16, 2}}},
}

// TreasureByEncounter returns the encounter treasure row for level, clamped.
func TreasureByEncounter(level int) EncounterTreasure {
	return treasureByEncounter[ClampLevel(level)-MinLevel]
}

// PartyTreasureByLevel returns the party treasure row for level, clamped.
func PartyTreasureByLevel(level int) PartyTreasure {
	return partyTreasureByLevel[ClampLevel(level)-MinLevel]
}

// CharacterWealthByLevel returns the character wealth row for level, clamped.
func CharacterWealthByLevel(level int) CharacterWealth {
	row := characterWealthByLevel[ClampLevel(level)-MinLevel]
	row.PermanentItems = append([]ItemSlot(nil), row.PermanentItems...)
	return row
}
