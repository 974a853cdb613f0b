// Package report surfaces fatal startup failures to the user.
//
// Two Reporter implementations exist, selected at build time:
//
//   - On Windows, a modal native message box titled "EVE Flipper" with
//     an error icon.
//   - Everywhere else, a single line on standard error prefixed with
//     "EVE Flipper error: ", the message verbatim after the label.
//
// The Once wrapper guarantees at most one fatal report per run.
package report
