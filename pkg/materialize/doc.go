// Package materialize instantiates template sets onto the filesystem.
//
// A Materialize call owns exactly the entries it creates: they are
// tracked in an ordered journal and removed in reverse order if the call
// aborts, so a failed scaffold never deletes unrelated user files that
// happened to share the target directory.
package materialize
