package internal

// EnvPrefix is a prefix of ENV variables related
// to pngme configuration.
const EnvPrefix = "pngme"

// EnvSeparator is a section separator in ENV variables.
const EnvSeparator = "_"
