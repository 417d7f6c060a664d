package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDangerousGit(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    bool
	}{
		{name: "push --force", command: "git push --force", want: true},
		{name: "push --force after refspec", command: "git push origin main --force", want: true},
		{name: "push --force-with-lease", command: "git push --force-with-lease", want: true},
		{name: "push -f", command: "git push -f origin main", want: true},
		{name: "push -f at the end", command: "git push origin main -f", want: true},
		{name: "reset --hard", command: "git reset --hard HEAD~1", want: true},
		{name: "clean -fd", command: "git clean -fd", want: true},
		{name: "clean -x", command: "git clean -x", want: true},
		{name: "clean --force", command: "git clean --force", want: true},
		{name: "branch -d", command: "git branch -d feature", want: true},
		{name: "branch -D", command: "git branch -D feature", want: true},
		{name: "branch --delete", command: "git branch --delete feature", want: true},
		{name: "config --global", command: "git config --global user.name foo", want: true},
		{name: "config --system", command: "git config --system core.editor vim", want: true},
		{name: "filter-branch", command: "git filter-branch --tree-filter 'rm x' HEAD", want: true},
		{name: "filter-repo", command: "git filter-repo --path secrets", want: true},
		{name: "rebase -i", command: "git rebase -i HEAD~3", want: true},
		{name: "rebase --interactive", command: "git rebase --interactive main", want: true},
		{name: "reflog expire", command: "git reflog expire --expire=now --all", want: true},
		{name: "gc --prune=now", command: "git gc --prune=now", want: true},
		{name: "remote remove origin", command: "git remote remove origin", want: true},
		{name: "remote rm origin", command: "git remote rm origin", want: true},
		{name: "global -c option before subcommand", command: "git -c core.pager=cat push --force", want: true},
		{name: "global -C option before subcommand", command: "git -C /repo reset --hard", want: true},
		{name: "--no-pager before subcommand", command: "git --no-pager push -f", want: true},
		{name: "uppercase", command: "GIT PUSH --FORCE", want: true},
		{name: "in a chain", command: "git add . && git push --force", want: true},
		{name: "commit --no-verify", command: "git commit --no-verify -m 'wip'", want: true},
		{name: "push --no-verify", command: "git push --no-verify origin feature", want: true},
		{name: "commit message mentioning --no-verify", command: `git commit -m "stop using --no-verify"`, want: false},
		{name: "--no-verify on another tool", command: "npm publish --no-verify", want: false},
		{name: "plain push", command: "git push origin main", want: false},
		{name: "push of branch containing -f", command: "git push origin feature-fix", want: false},
		{name: "push --follow-tags", command: "git push --follow-tags", want: false},
		{name: "reset --soft", command: "git reset --soft HEAD~1", want: false},
		{name: "clean dry run", command: "git clean -n", want: false},
		{name: "clean --dry-run", command: "git clean --dry-run", want: false},
		{name: "branch list", command: "git branch -a", want: false},
		{name: "branch --merged", command: "git branch --merged", want: false},
		{name: "local config", command: "git config user.name foo", want: false},
		{name: "rebase onto main", command: "git rebase main", want: false},
		{name: "rebase --continue", command: "git rebase --continue", want: false},
		{name: "remove other remote", command: "git remote remove upstream", want: false},
		{name: "plain gc", command: "git gc", want: false},
		{name: "commit message mentioning push -f", command: "git commit -m 'fix push -f handling'", want: false},
		{name: "status", command: "git status", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDangerousGit(NormalizeCommand(tt.command))
			assert.Equal(t, tt.want, got)
		})
	}
}
