package alphabet

// Default is the stock alphabet: lowercase a–z plus underscore.
//
// With 27 characters its radix is 28, each character costs 5 bits, and
// symbols may be up to 25 characters long.
var Default = MustNew("Default", "abcdefghijklmnopqrstuvwxyz_")
