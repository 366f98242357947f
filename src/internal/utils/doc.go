// Package utils provides small helpers shared across zte-goform.
//
// # Components
//
//   - Size formatting: render byte counts the way the device web UI does
//   - Path utilities: resolve paths relative to the config directory
//   - File utilities: close resources and log failures
//
// # Example Usage
//
//	fmt.Println(utils.ConvertSize(157286400000)) // 146.48 GB
//
//	absPath := utils.GetAbsolutePath("password.txt", "/etc/zte-goform")
//	// Returns: /etc/zte-goform/password.txt
package utils
