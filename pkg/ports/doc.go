/*
Package ports defines the driven ports (interfaces) of the Tale engine.

These interfaces decouple the dispatch loop from the concrete collaborators a
host plugs in, so the same engine can be driven by a terminal, a scripted
replay in tests, or any other line-oriented front end.

# Key Interfaces

  - LineSource: Supplies one line of input per call, ErrNoLine, or io.EOF.
  - Engine: The host-facing surface of a running engine.
*/
package ports
