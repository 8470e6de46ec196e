package config

import "image/color"

// CarStyle is one selectable vehicle livery
type CarStyle struct {
	Name        string
	Primary     color.RGBA
	Secondary   color.RGBA
	SpriteIndex int
}

// CarStyles is the fixed garage rotation, cycled by the change-car command
var CarStyles []CarStyle

func init() {
	CarStyles = []CarStyle{
		{Name: "Red Racer", Primary: rgb(0xff4444), Secondary: rgb(0xcc0000), SpriteIndex: 0},
		{Name: "Blue Thunder", Primary: rgb(0x4444ff), Secondary: rgb(0x0000cc), SpriteIndex: 1},
		{Name: "Green Machine", Primary: rgb(0x44ff44), Secondary: rgb(0x00cc00), SpriteIndex: 2},
		{Name: "Yellow Lightning", Primary: rgb(0xffff44), Secondary: rgb(0xcccc00), SpriteIndex: 3},
		{Name: "Pink Power", Primary: rgb(0xff44ff), Secondary: rgb(0xcc00cc), SpriteIndex: 0},
		{Name: "Cyan Cruiser", Primary: rgb(0x44ffff), Secondary: rgb(0x00cccc), SpriteIndex: 1},
	}
}

// Style returns the style at index, wrapping out-of-range values.
func Style(index int) CarStyle {
	return CarStyles[StyleIndex(index)]
}

// StyleIndex wraps index into the range of CarStyles.
func StyleIndex(index int) int {
	n := len(CarStyles)
	return ((index % n) + n) % n
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 255}
}
