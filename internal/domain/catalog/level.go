// Package catalog models the five level asset taxonomy:
// Category > SubCategory > Type > Make > ModelNumber.
package catalog

import "fmt"

type Level string

const (
	LevelCategory    Level = "category"
	LevelSubCategory Level = "sub_category"
	LevelType        Level = "type"
	LevelMake        Level = "make"
	LevelModelNumber Level = "model_number"
)

var levelOrder = []Level{LevelCategory, LevelSubCategory, LevelType, LevelMake, LevelModelNumber}

var levelLabels = map[Level]string{
	LevelCategory:    "asset category",
	LevelSubCategory: "asset sub category",
	LevelType:        "asset type",
	LevelMake:        "asset make",
	LevelModelNumber: "asset model number",
}

// Levels returns the levels root first.
func Levels() []Level {
	out := make([]Level, len(levelOrder))
	copy(out, levelOrder)
	return out
}

func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", fmt.Errorf("invalid catalog level: %q", s)
	}
	return l, nil
}

func (l Level) String() string {
	return string(l)
}

func (l Level) IsValid() bool {
	_, ok := levelLabels[l]
	return ok
}

func (l Level) IsRoot() bool {
	return l == LevelCategory
}

func (l Level) IsLeaf() bool {
	return l == LevelModelNumber
}

// Label is the human readable name used in messages.
func (l Level) Label() string {
	return levelLabels[l]
}

func (l Level) index() int {
	for i, lv := range levelOrder {
		if lv == l {
			return i
		}
	}
	return -1
}

// Parent returns the level directly above l. ok is false for the root.
func (l Level) Parent() (Level, bool) {
	i := l.index()
	if i <= 0 {
		return "", false
	}
	return levelOrder[i-1], true
}

// Child returns the level directly below l. ok is false for the leaf.
func (l Level) Child() (Level, bool) {
	i := l.index()
	if i < 0 || i == len(levelOrder)-1 {
		return "", false
	}
	return levelOrder[i+1], true
}
