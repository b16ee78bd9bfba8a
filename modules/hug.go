package modules

import "math/rand"

var hugMessages = []string{
	"( っ˶´ ˘ `)っ",
	"♡⸜(ˆᗜˆ˵ )⸝♡",
	"(っᵔ◡ᵔ)っ",
	"(づ> v <)づ♡",
	"ʕっ•ᴥ•ʔっ ♡",
	"◝(ᵔᗜᵔ)◜",
	"(૭ ｡•̀ ᵕ •́｡ )૭",
	"(⊙ _ ⊙ )",
	"(◍•ᴗ•◍)♡",
	"≽^•⩊•^≼",
	"ᕙ(  •̀ ᗜ •́  )ᕗ",
	"( ⊃ ◕ _ ◕)⊃",
	"༼つ◕_◕༽つ",
	"(ㅅ´ ˘ `)",
	"(˵ •̀ ᴗ - ˵ ) ✧",
	"(❀❛ ֊ ❛„)♡",
}

// Hug returns one randomly chosen group-hug reaction.
func Hug(rng *rand.Rand) string {
	return hugMessages[rng.Intn(len(hugMessages))]
}
