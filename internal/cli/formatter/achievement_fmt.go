package formatter

import "github.com/selenkov/portfolio/internal/contract"

const notUnlocked = "not yet unlocked"

// FormatAchievements lists the catalog in order, marking unlocked entries
// with their unlock date.
func FormatAchievements(views []contract.AchievementView) string {
	rows := make([][]string, 0, len(views))
	unlocked := 0
	for _, v := range views {
		mark, when := Dim("○"), Dim(notUnlocked)
		name := StyleFg.Render(v.Name)
		if v.Unlocked() {
			unlocked++
			mark = StyleGreen.Render("★")
			when = StyleGreen.Render(HumanDate(*v.UnlockedAt))
			name = Bold(v.Name)
		}
		rows = append(rows, []string{mark, name, Dim(v.Description), when})
	}
	return RenderTable([]string{"", "ACHIEVEMENT", "CONDITION", "UNLOCKED"}, rows) +
		Dim(plural(unlocked, "achievement")+" unlocked of "+itoa(len(views)))
}
