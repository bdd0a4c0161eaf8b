// Package logging provides leveled logging on top of the standard library
// log package.
//
// The level is read once from the environment: DEBUG=1 (or true/yes/on)
// enables debug output, otherwise LOG_LEVEL selects one of debug, info,
// warn, or error. The default level is info.
//
// Messages are prefixed with their level ([DEBUG], [INFO], [WARN], [ERROR])
// so they can be filtered downstream by log collectors.
package logging
