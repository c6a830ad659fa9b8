package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Question
	Mark
	Palette
	Export
	History
	Tint
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "\uf00c",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "\uf00d",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "\uf254",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟨",
	},
	Question: {
		emoji:   "🤔",
		nerd:    "\uf128",
		plain:   "?",
		kaomoji: "(°ロ°)?",
		squares: "🟦",
	},
	Mark: {
		emoji:   "👉",
		nerd:    "\uf054",
		plain:   ">",
		kaomoji: "(☞ﾟヮﾟ)☞",
		squares: "▶",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "\uf53f",
		plain:   "#",
		kaomoji: "ヽ(°〇°)ﾉ",
		squares: "🟪",
	},
	Export: {
		emoji:   "💾",
		nerd:    "\uf0c7",
		plain:   "->",
		kaomoji: "(っ˘ω˘ς)",
		squares: "⬛",
	},
	History: {
		emoji:   "📜",
		nerd:    "\uf1da",
		plain:   "*",
		kaomoji: "(￣ー￣)",
		squares: "⬜",
	},
	Tint: {
		emoji:   "🌈",
		nerd:    "\uf043",
		plain:   "~",
		kaomoji: "(◕‿◕)",
		squares: "🟧",
	},
}
