package data

import (
	_ "embed"
)

//go:embed seed/emotions.json
var SeedEmotions []byte
