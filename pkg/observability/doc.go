/*
Package observability turns engine lifecycle hooks into Prometheus metrics.

The collectors are registered on a caller-supplied registry so several
engines (or tests) never collide on the default one. WriteText dumps a
registry in the text exposition format, which the CLI uses to print a
summary when a session ends.
*/
package observability
