// Package logger provides a thin zerolog wrapper with component tagging
// and console/JSON output. The client logs dispatch activity through it;
// library consumers that want silence use Nop.
package logger
