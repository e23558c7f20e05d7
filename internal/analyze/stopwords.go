package analyze

import "strings"

// stopwords are dropped from word-cloud input: English function words,
// spoken filler, and track-listing noise like "remastered".
var stopwords = make(map[string]struct{})

func init() {
	const words = `remastered remaster chorus verse
		the a an and or but if so for to of at by
		in on with from up down out over under again once
		is am are was were be been being have has had
		do does did will would shall should can could may
		might must uh um er ah oh like yeah yep okay ok really
		just very literally actually basically kinda sorta la`
	for _, w := range strings.Fields(words) {
		stopwords[w] = struct{}{}
	}
}
