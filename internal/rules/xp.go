package rules

// xpThresholds[i] is the experience required to reach level i+1. The
// same table applies to every class.
var xpThresholds = [MaxLevel]int{
	0, 300, 900, 2700, 6500,
	14000, 23000, 34000, 48000, 64000,
	85000, 100000, 120000, 140000, 165000,
	195000, 225000, 265000, 305000, 355000,
}

// XPLevel returns the level a character's experience total entitles it
// to, between 1 and 20.
func XPLevel(xp int) int {
	level := 1
	for i := 1; i < MaxLevel; i++ {
		if xp >= xpThresholds[i] {
			level = i + 1
		}
	}
	return level
}

// XPForLevel returns the experience threshold for a level. Levels out
// of range clamp to the table bounds.
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return xpThresholds[level-1]
}

// XPProgress summarizes where an experience total sits between its
// current level threshold and the next.
type XPProgress struct {
	Level           int
	NextLevelXP     int
	XPToNextLevel   int
	ProgressPercent int
}

// ComputeXPProgress derives the progress fields for an XP total. At
// level 20 the next threshold is 0 and progress is 100.
func ComputeXPProgress(xp int) XPProgress {
	level := XPLevel(xp)
	if level >= MaxLevel {
		return XPProgress{Level: MaxLevel, ProgressPercent: 100}
	}
	current := XPForLevel(level)
	next := XPForLevel(level + 1)
	span := next - current
	percent := 0
	if span > 0 {
		percent = (xp - current) * 100 / span
	}
	return XPProgress{
		Level:           level,
		NextLevelXP:     next,
		XPToNextLevel:   next - xp,
		ProgressPercent: percent,
	}
}
