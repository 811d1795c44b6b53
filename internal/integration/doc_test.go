// Package integration runs lync-update-info end to end against a local feed server.
package integration
