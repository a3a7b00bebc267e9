package color

import "github.com/fatih/color"

func Green(str any) string {
	return color.GreenString("%s", str)
}

func Yellow(str any) string {
	return color.YellowString("%s", str)
}

func RedFmt(fmt string, args ...any) string {
	return color.RedString(fmt, args...)
}

func Red(str any) string {
	return color.RedString("%s", str)
}

func Gray(str any) string {
	return color.WhiteString("%s", str) // Use white for gray
}
