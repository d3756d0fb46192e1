// Package magetasks provides organized build tasks for the fogrid project.
//
// This package contains the build, test, and lint tasks used by the
// Magefile. Tasks are organized into namespaces there.
package magetasks
