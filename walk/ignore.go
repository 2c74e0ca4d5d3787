package walk

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hupe1980/ffind/internal/glob"
)

// ignoreRule is one parsed line of an ignore file.
type ignoreRule struct {
	re       *regexp.Regexp
	negation bool
	dirOnly  bool
	// anchored rules (leading slash, or a slash anywhere in the pattern)
	// match against the path relative to the rule's directory; unanchored
	// rules match against the entry's base name at any level.
	anchored bool
}

func (r *ignoreRule) matches(rel, name string, isDir bool) bool {
	if r.dirOnly && !isDir {
		return false
	}

	if r.anchored {
		return r.re.MatchString(rel)
	}

	return r.re.MatchString(name)
}

// parseIgnoreLine parses a single ignore-file line. Lines that are empty,
// comments, or carry malformed globs yield ok=false and are skipped; ignore
// files never abort a walk.
func parseIgnoreLine(line string) (ignoreRule, bool) {
	line = trimTrailingSpace(line)
	if line == "" || (strings.HasPrefix(line, "#") && !strings.HasPrefix(line, `\#`)) {
		return ignoreRule{}, false
	}

	var rule ignoreRule

	if strings.HasPrefix(line, "!") {
		rule.negation = true
		line = line[1:]
	}

	if strings.HasSuffix(line, "/") {
		rule.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}

	anchored := strings.HasPrefix(line, "/")
	line = strings.TrimPrefix(line, "/")
	rule.anchored = anchored || strings.Contains(line, "/")

	if line == "" {
		return ignoreRule{}, false
	}

	src, err := glob.Translate(line)
	if err != nil {
		return ignoreRule{}, false
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return ignoreRule{}, false
	}

	rule.re = re

	return rule, true
}

// trimTrailingSpace removes unescaped trailing spaces per gitignore rules.
func trimTrailingSpace(line string) string {
	i := len(line)
	for i > 0 && line[i-1] == ' ' {
		backslashes := 0
		for j := i - 2; j >= 0 && line[j] == '\\'; j-- {
			backslashes++
		}
		if backslashes%2 == 1 {
			break
		}
		i--
	}

	return line[:i]
}

// ruleSet is an immutable chain of per-directory ignore rules. A child
// directory's set links to its parent's, so rules closer to the entry are
// applied later and win on conflict.
type ruleSet struct {
	parent *ruleSet
	base   string // slash-normalized directory holding the rules
	rules  []ignoreRule
}

// ignoreSources are consulted lowest-priority first inside one directory so
// later files can override earlier ones with negations.
var ignoreSources = []string{".gitignore", ".ignore"}

// newRuleSet extends parent with the ignore files found in dir. It returns
// parent unchanged when dir carries no rules.
func newRuleSet(parent *ruleSet, dir string) *ruleSet {
	var rules []ignoreRule
	for _, source := range ignoreSources {
		rules = append(rules, loadIgnoreFile(filepath.Join(dir, source))...)
	}

	if len(rules) == 0 {
		return parent
	}

	return &ruleSet{
		parent: parent,
		base:   filepath.ToSlash(dir),
		rules:  rules,
	}
}

// rootRuleSet builds the base set for a walk root, honoring the
// repository-level exclude file when present.
func rootRuleSet(root string) *ruleSet {
	rules := loadIgnoreFile(filepath.Join(root, ".git", "info", "exclude"))
	if len(rules) == 0 {
		return nil
	}

	return &ruleSet{
		base:  filepath.ToSlash(root),
		rules: rules,
	}
}

func loadIgnoreFile(path string) []ignoreRule {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var rules []ignoreRule
	for _, line := range strings.Split(string(data), "\n") {
		if rule, ok := parseIgnoreLine(strings.TrimSuffix(line, "\r")); ok {
			rules = append(rules, rule)
		}
	}

	return rules
}

// Ignored reports whether path (in the same slash-normalized form as the
// sets' bases) is excluded by the chain. The last matching rule wins.
func (s *ruleSet) Ignored(path, name string, isDir bool) bool {
	ignored := false
	s.apply(path, name, isDir, &ignored)

	return ignored
}

func (s *ruleSet) apply(path, name string, isDir bool, ignored *bool) {
	if s == nil {
		return
	}

	s.parent.apply(path, name, isDir, ignored)

	rel, ok := strings.CutPrefix(path, s.base+"/")
	if !ok {
		return
	}

	for i := range s.rules {
		if s.rules[i].matches(rel, name, isDir) {
			*ignored = !s.rules[i].negation
		}
	}
}
