// Package preflight provides readiness checks for the filesystem paths a
// corpus build depends on.
//
// The root command runs RunAll before building. Any failed check aborts the
// run with exit code 2 so a misconfigured path never produces a half-empty
// corpus. The same checks back "corhoh config validate".
package preflight
