// Package cli provides the interactive EasyApt command-line client.
//
// It wires configuration, the credential store, API services, and an
// interactive REPL. Typical flow: restore or prompt for a session, start a
// background connectivity watcher, and execute user commands.
//
// Key features:
//   - Register / Login / Logout
//   - View and edit the patient profile
//   - Browse and search providers, inspect taken slots
//   - Book, list, reschedule and cancel appointments
//   - Provider dashboard for provider accounts
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// When the server signals that the session expired due to inactivity, the
// App (acting as the gateway's SessionHandler) prints a notice and returns
// the user to the logged-out state.
package cli
