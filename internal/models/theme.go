package models

// ThemeFonts lists the accepted font families for portfolio themes.
var ThemeFonts = []string{"Inter", "Roboto", "Open Sans", "Lato", "Montserrat"}

// ThemeLayouts lists the accepted layout identifiers.
var ThemeLayouts = []string{"modern", "classic", "minimal"}
