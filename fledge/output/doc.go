// Package output prints user-facing messages for the CLI.
//
// Info writes to standard output. Error and Verbose write to standard
// error, Verbose only after SetVerbose(true):
//
//	output.Error("CMakeLists.txt already exists in the current directory")
//	// Error: CMakeLists.txt already exists in the current directory
//
//	output.SetVerbose(true)
//	output.Verbose("Project name: My_Project")
//	// debug: Project name: My_Project
//
// Messages are styled with lipgloss only when the writer is a terminal, so
// redirected output and the writers installed with SetWriters get plain
// text.
package output
