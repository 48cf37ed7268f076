// Package gcm generates CMake project files for C and C++ projects.
package gcm

// Version is the released version of the gcm tool.
const Version = "0.1.0"
