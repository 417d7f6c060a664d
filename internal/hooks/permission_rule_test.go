package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDangerousPermissionChange(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{name: "chmod 777", command: "chmod 777 file.txt", want: true},
		{name: "chmod -R 777", command: "chmod -R 777 dir", want: true},
		{name: "chmod a+rwx", command: "chmod a+rwx file", want: true},
		{name: "chmod o+w", command: "chmod o+w file", want: true},
		{name: "chmod -R 776", command: "chmod -R 776 dir", want: true},
		{name: "setuid octal", command: "chmod 4755 /usr/local/bin/tool", want: true},
		{name: "setuid and setgid octal", command: "chmod 6755 shared", want: true},
		{name: "sudo chmod +x", command: "sudo chmod +x run.sh", want: false},
		{name: "u+s", command: "chmod u+s binary", want: true},
		{name: "g+s", command: "chmod g+s dir", want: true},
		{name: "chown -R root", command: "chown -R root /etc", want: true},
		{name: "chown -R user:group", command: "chown -R user:staff dir", want: true},
		{name: "sudo chmod", command: "sudo chmod 644 /etc/hosts", want: true},
		{name: "sudo chown", command: "sudo chown me file", want: true},
		{name: "chmod +x", command: "chmod +x script.sh", want: false},
		{name: "chmod +x wins over a deny pattern", command: "chmod +x a.sh && chmod 777 b", want: false},
		{name: "chmod 644", command: "chmod 644 file", want: false},
		{name: "chmod 755", command: "chmod 755 dir", want: false},
		{name: "chmod 0755", command: "chmod 0755 dir", want: false},
		{name: "chmod u+x", command: "chmod u+x file", want: false},
		{name: "chown single file", command: "chown user file", want: false},
		{name: "listing", command: "ls -la", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDangerousPermissionChange(NormalizeCommand(tt.command))
			assert.Equal(t, tt.want, got)
		})
	}
}
