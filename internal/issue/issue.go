// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	ConfigNotFoundId Id = iota + 1
	ConfigParseErrorId
	RecipeNotFoundId
	ArgumentMismatchId
	TemplateErrorId
	UndefinedEnvVarId
	CommandSpawnFailedId
	SettingsInvalidId
)

type (
	// Id identifies a catalog entry.
	Id int

	// MarkdownMsg is a help text written in Markdown.
	MarkdownMsg string

	// HttpLink is a reference URL attached to an issue.
	HttpLink string

	// Issue is a catalog entry with extended help for a class of failure.
	Issue struct {
		id       Id
		mdMsg    MarkdownMsg
		docLinks []HttpLink
		extLinks []HttpLink
	}
)

var (
	// render is a package variable so tests can substitute the renderer.
	render = glamour.Render

	configNotFoundIssue = &Issue{
		id: ConfigNotFoundId,
		mdMsg: `
# No recipe file found

jiu looks for a file named ` + "`.jiu.toml`" + ` in the current directory and
then in every parent directory.

## Things you can try:
- Create a ` + "`.jiu.toml`" + ` at the root of your project:

~~~toml
description = "Project tasks"
default = "build"

[[recipes]]
names = ["build", "b"]
command = ["go", "build", "./..."]
~~~

- Point ` + "`JIU_CONFIG`" + ` at a recipe file elsewhere.
`,
	}

	configParseErrorIssue = &Issue{
		id: ConfigParseErrorId,
		mdMsg: `
# Invalid recipe file

The recipe file could not be parsed or does not match the expected shape.

## Things you can try:
- Check the TOML syntax near the reported line and column.
- Every recipe needs a non-empty ` + "`names`" + ` list and a non-empty ` + "`command`" + `.
- Command placeholders are one-element arrays: ` + "`[\"*files\"]`" + `, ` + "`[\"$HOME\"]`" + `.
`,
	}

	recipeNotFoundIssue = &Issue{
		id: RecipeNotFoundId,
		mdMsg: `
# Recipe not found

No recipe declares the requested name.

## Things you can try:
- Run ` + "`jiu --list`" + ` to see the available recipes and their aliases.
- Names are matched exactly and case sensitively.
`,
	}

	argumentMismatchIssue = &Issue{
		id: ArgumentMismatchId,
		mdMsg: `
# Arguments do not fit the recipe

Arguments are assigned to slots from left to right. A variadic slot takes
every remaining argument, so slots declared after it may be left empty.

| Symbol | Meaning |
|--------|---------|
| (none) | exactly one value |
| ` + "`?`" + ` | zero or one value |
| ` + "`*`" + ` | zero or more values |
| ` + "`+`" + ` | one or more values |

## Things you can try:
- Run ` + "`jiu --list`" + ` and compare the usage line with your invocation.
`,
	}

	templateErrorIssue = &Issue{
		id: TemplateErrorId,
		mdMsg: `
# Invalid command template

A placeholder in the recipe command does not match any declared argument,
or refers to it with a different quantifier symbol.

## Things you can try:
- Declare the argument in the recipe's ` + "`arguments`" + ` list.
- Use the same symbol in the placeholder as in the declaration, or none.
`,
	}

	undefinedEnvVarIssue = &Issue{
		id: UndefinedEnvVarId,
		mdMsg: `
# Environment variable not set

The recipe command references an environment variable with ` + "`[\"$NAME\"]`" + `,
but it is not set. An empty value counts as set.

## Things you can try:
- Export the variable before running jiu.
`,
	}

	commandSpawnFailedIssue = &Issue{
		id: CommandSpawnFailedId,
		mdMsg: `
# Command could not be started

The first element of the resolved command is the program to run. It must be
an executable on your ` + "`PATH`" + ` or a path to one.

## Things you can try:
- Run with ` + "`JIU_DEBUG=1`" + ` to print the resolved command.
- Wrap shell syntax in an explicit shell: ` + "`[\"sh\", \"-c\", \"...\"]`" + `.
`,
	}

	settingsInvalidIssue = &Issue{
		id: SettingsInvalidId,
		mdMsg: `
# Invalid settings

One of the ` + "`JIU_*`" + ` environment variables has an unsupported value.

## Things you can try:
- ` + "`JIU_COLOR`" + ` accepts ` + "`auto`" + `, ` + "`always`" + ` or ` + "`never`" + `.
`,
	}

	issues = map[Id]*Issue{
		configNotFoundIssue.Id():     configNotFoundIssue,
		configParseErrorIssue.Id():   configParseErrorIssue,
		recipeNotFoundIssue.Id():     recipeNotFoundIssue,
		argumentMismatchIssue.Id():   argumentMismatchIssue,
		templateErrorIssue.Id():      templateErrorIssue,
		undefinedEnvVarIssue.Id():    undefinedEnvVarIssue,
		commandSpawnFailedIssue.Id(): commandSpawnFailedIssue,
		settingsInvalidIssue.Id():    settingsInvalidIssue,
	}
)

// Id returns the catalog identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown help text.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// DocLinks returns links to project documentation.
func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// ExternalLinks returns links to third-party references.
func (i *Issue) ExternalLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the help text and its links for a terminal with the given
// glamour style ("dark", "light", "notty", ...).
func (i *Issue) Render(style string) (string, error) {
	var extraMd strings.Builder
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd.WriteString("\n\n## See also: ")
		for _, link := range i.docLinks {
			extraMd.WriteString("- [" + string(link) + "]")
		}
		for _, link := range i.extLinks {
			extraMd.WriteString("- [" + string(link) + "]")
		}
	}
	return render(string(i.mdMsg)+extraMd.String(), style)
}

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	ids := slices.Sorted(maps.Keys(issues))
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the catalog entry for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
