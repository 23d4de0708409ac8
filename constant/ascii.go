package constant

// AsciiArtLogo is the banner rendered by the root command's long help output.
const AsciiArtLogo = `
     _     _ _    _
 ___| |__ (_) | _(_) __ _  ___
/ __| '_ \| | |/ / |/ _` + "`" + ` |/ _ \
\__ \ | | | |   <| | (_| | (_) |
|___/_| |_|_|_|\_\_|\__, |\___/
                    |___/
`
