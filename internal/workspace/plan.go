package workspace

import (
	"path"
)

// IndexGroup names the single document produced without package splitting.
const IndexGroup = "index"

// MemberExamples pairs a member with its examples.
type MemberExamples struct {
	Member   Member
	Examples []Example
}

// Job is one output document.
type Job struct {
	Group   string // output group: IndexGroup or a member name
	Example string // set only when split per example
	RelPath string // output path relative to the out dir, slash-separated
	Files   []File
}

// Title is the document title of the job.
func (j Job) Title() string {
	if j.Example != "" {
		return j.Example
	}
	return j.Group
}

// Plan groups examples into output documents. Without splitPackage every
// example goes into IndexGroup; with it each member is its own group.
// Groups without examples are skipped. Without splitExample each group is
// one document <group>.html; with it each example is <group>/<example>.html.
func Plan(members []MemberExamples, splitPackage, splitExample bool) []Job {
	type group struct {
		name     string
		examples []Example
	}

	var groups []group
	if splitPackage {
		for _, m := range members {
			groups = append(groups, group{name: m.Member.Name, examples: m.Examples})
		}
	} else {
		all := group{name: IndexGroup}
		for _, m := range members {
			all.examples = append(all.examples, m.Examples...)
		}
		groups = []group{all}
	}

	var jobs []Job
	for _, g := range groups {
		if len(g.examples) == 0 {
			continue
		}
		if splitExample {
			for _, ex := range g.examples {
				jobs = append(jobs, Job{
					Group:   g.name,
					Example: ex.Name,
					RelPath: path.Join(g.name, ex.Name+".html"),
					Files:   ex.Files,
				})
			}
			continue
		}

		job := Job{Group: g.name, RelPath: g.name + ".html"}
		for _, ex := range g.examples {
			job.Files = append(job.Files, ex.Files...)
		}
		jobs = append(jobs, job)
	}
	return jobs
}

// Dirs returns the distinct parent directories of the jobs' outputs, in
// first-seen order, excluding the out dir itself.
func Dirs(jobs []Job) []string {
	seen := map[string]bool{}
	var dirs []string
	for _, j := range jobs {
		d := path.Dir(j.RelPath)
		if d == "." || seen[d] {
			continue
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	return dirs
}
