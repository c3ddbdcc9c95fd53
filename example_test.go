package changelog_test

import (
	"fmt"
	"log"

	changelog "github.com/tomavic/conventional-changelog"
)

// Example_basic demonstrates parsing a single commit message with the
// conventional-commit defaults.
func Example_basic() {
	commit, err := changelog.Parse("fix(parser): handle empty scope\n\ncloses #42\n",
		changelog.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	typ, _ := commit.Field("type")
	scope, _ := commit.Field("scope")
	subject, _ := commit.Field("subject")

	fmt.Printf("type: %s\n", typ)
	fmt.Printf("scope: %s\n", scope)
	fmt.Printf("subject: %s\n", subject)
	fmt.Printf("closes: #%s\n", commit.References[0].Issue)
	// Output:
	// type: fix
	// scope: parser
	// subject: handle empty scope
	// closes: #42
}

// ExampleNewStream demonstrates ordered multi-record processing with the
// default warn-and-skip policy.
func ExampleNewStream() {
	stream, err := changelog.NewStream(changelog.DefaultOptions(),
		changelog.WithWarningHandler(func(err error) {
			fmt.Println("warning:", err)
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	commits, err := stream.ProcessAll([]string{
		"feat: add watch mode",
		"   ",
		"chore: bump deps",
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, commit := range commits {
		subject, _ := commit.Field("subject")
		fmt.Println(subject)
	}
	// Output:
	// warning: commit message is empty
	// add watch mode
	// bump deps
}

// ExampleParse_breakingChange shows note extraction from the footer.
func ExampleParse_breakingChange() {
	message := "feat(api): new endpoint\n\n" +
		"the body of the change\n\n" +
		"BREAKING CHANGE: the old endpoint is gone\n" +
		"migrate to /v2 instead\n"

	commit, err := changelog.Parse(message, changelog.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	note := commit.Notes[0]
	fmt.Printf("title: %s\n", note.Title)
	fmt.Printf("text: %q\n", note.Text)
	// Output:
	// title: BREAKING CHANGE
	// text: "the old endpoint is gone\nmigrate to /v2 instead\n"
}
