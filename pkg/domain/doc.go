/*
Package domain contains the core types shared by the Tale engine and the
applications built on top of it.

It defines the handler contracts, the transition outcome returned by every
handler call, and the engine-visible part of the session State. This package
is kept free of I/O so hosts and adapters can depend on it without pulling
the runtime in.

# Key Entities

  - Outcome: The tagged result of a handler call (Continue, TransitionTo, Terminate).
  - Scenario: A named state of the interaction with on-enter and on-input behavior.
  - Command: A global handler keyed by exact input text.
  - State: The capability set the engine needs from the host's session data.
  - BasicState: A ready-made State with flags, integer values and notes.
*/
package domain
