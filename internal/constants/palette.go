package constants

// Emojis is the fixed emoji palette offered when creating a tracker.
var Emojis = []string{
	"🙂", "😻", "🌺", "🐶", "❤️", "😱",
	"😇", "😡", "🥶", "🤔", "🙌", "🍔",
	"🥦", "🏓", "🥇", "🎸", "🏝", "😪",
}

// Colors maps the fixed palette of color tokens to their hex values. The
// token (selection1..selection18) is what a tracker stores; the hex value is
// only used when rendering.
var Colors = map[string]string{
	"selection1":  "#FD4C49",
	"selection2":  "#FF881E",
	"selection3":  "#007BFA",
	"selection4":  "#6E44FE",
	"selection5":  "#33CF69",
	"selection6":  "#E66DD4",
	"selection7":  "#F9D4D4",
	"selection8":  "#34A7FE",
	"selection9":  "#46E69D",
	"selection10": "#35347C",
	"selection11": "#FF674D",
	"selection12": "#FF99CC",
	"selection13": "#F6C48B",
	"selection14": "#7994F5",
	"selection15": "#832CF1",
	"selection16": "#AD56DA",
	"selection17": "#8D72E3",
	"selection18": "#2FD058",
}

// ColorTokens lists the palette tokens in display order.
var ColorTokens = []string{
	"selection1", "selection2", "selection3",
	"selection4", "selection5", "selection6",
	"selection7", "selection8", "selection9",
	"selection10", "selection11", "selection12",
	"selection13", "selection14", "selection15",
	"selection16", "selection17", "selection18",
}
