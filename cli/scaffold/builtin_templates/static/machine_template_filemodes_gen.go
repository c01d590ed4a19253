package static

// This file is generated! DO NOT EDIT

var MachineFileModes = map[string]int{
	"Vagrantfile.vl.template": 420, /* 0644 */
	"files/.gitkeep":          420, /* 0644 */
	"provision/provision-{{.MachineName}}.sh.vl.template": 493, /* 0755 */
}
