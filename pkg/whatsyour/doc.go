// Package whatsyour is a client for the What'sYour.Info API: public profile
// lookup, user authentication and the OAuth authorization-code flow.
//
// Every network method issues exactly one HTTP request and returns either a
// typed record or an *Error. Use errors.Is with ErrNotFound, ErrAuthentication
// and the other sentinels to branch on the failure kind.
package whatsyour
