package services

// Service defines the lifecycle interface for non-ECS game subsystems:
// the fact provider, the audio sequencer, anything with its own
// background work and teardown needs.
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Init prepares the service; receives the wiring context
	// Called before Start, in dependency order
	Init(ctx any) error

	// Start begins service operation
	// Called after all services are initialized
	Start() error

	// Stop halts service operation and releases resources
	Stop() error
}

// Dependent is optionally implemented by services that must initialize
// after others. Names refer to Service.Name of the dependencies.
type Dependent interface {
	Dependencies() []string
}
