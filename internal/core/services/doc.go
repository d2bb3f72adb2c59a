// Package services implements the driving port interfaces.
// Services contain the core business logic: schema exploration,
// mapping construction and the sync pass itself. They orchestrate
// calls to driven ports (source stores, the collection store,
// persistence) and never talk to the network directly.
//
// Services are pure Go with no CGO or external dependencies.
package services
