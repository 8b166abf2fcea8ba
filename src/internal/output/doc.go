// Package output writes the generated lists to disk.
//
// FileWriter writes two files into one directory: the servers-only list and
// the servers plus provider ranges list. Each network is rendered on its own
// line with a fasttemplate format (default "{{cidr}}"), lines are joined by
// "\n" without a trailing newline, and existing files are overwritten. A file
// whose content would not change is left untouched.
package output
