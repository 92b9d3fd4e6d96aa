// Package shell implements the line-oriented command layer over the
// namespace engine: it tokenizes input lines, dispatches them to the
// filesystem operations and writes the textual responses.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/treefs/treefs/filesystem"
	"github.com/treefs/treefs/internal/util"
)

// Response markers of the wire protocol. Every failure, whatever the engine
// error, is reported as the uniform failure marker.
const (
	respOK   = "ok"
	respFail = "no"
	respRead = "contenuto"
)

// Shell reads commands from in, applies them to fs and writes responses to
// out. It owns parsing and response formatting; all tree semantics live in
// the filesystem package.
type Shell struct {
	fs        *filesystem.FileSystem
	in        io.Reader
	out       io.Writer
	sessionID uuid.UUID
}

// New creates a Shell bound to the given filesystem and streams.
func New(fs *filesystem.FileSystem, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		fs:        fs,
		in:        in,
		out:       out,
		sessionID: uuid.New(),
	}
}

// Run processes commands line by line until exit or end of input.
func (s *Shell) Run() error {
	logger := util.GetLogger("shell")
	logger.Debug().Stringer("session", s.sessionID).Msg("Session started")

	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if !s.Execute(scanner.Text()) {
			break
		}
	}

	logger.Debug().Stringer("session", s.sessionID).Msg("Session ended")
	return scanner.Err()
}

// Execute runs a single command line and returns false when the session
// should end. Blank lines and unknown commands are ignored.
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "create":
		s.doCreate(fields, filesystem.File)
	case "create_dir":
		s.doCreate(fields, filesystem.Dir)
	case "read":
		s.doRead(fields)
	case "write":
		s.doWrite(line, fields)
	case "delete":
		s.doDelete(fields, false)
	case "delete_r":
		s.doDelete(fields, true)
	case "find":
		s.doFind(fields)
	case "exit":
		return false
	default:
		logger := util.GetLogger("shell")
		logger.Debug().Str("command", fields[0]).Msg("Ignoring unknown command")
	}
	return true
}

// create <path> / create_dir <path>
// Create a new empty file or directory.
func (s *Shell) doCreate(fields []string, kind filesystem.NodeKind) {
	if len(fields) < 2 {
		s.reply(respFail)
		return
	}
	parent, name, err := filesystem.ResolveParent(s.fs.Root(), fields[1])
	if err != nil {
		s.reply(respFail)
		return
	}
	if _, err := s.fs.Create(parent, name, kind); err != nil {
		s.reply(respFail)
		return
	}
	s.reply(respOK)
}

// read <path>
// Read the whole file content.
func (s *Shell) doRead(fields []string) {
	if len(fields) < 2 {
		s.reply(respFail)
		return
	}
	node, err := filesystem.Resolve(s.fs.Root(), fields[1])
	if err != nil {
		s.reply(respFail)
		return
	}
	content, err := s.fs.ReadContent(node)
	if err != nil {
		s.reply(respFail)
		return
	}
	s.reply(fmt.Sprintf("%s %s", respRead, content))
}

// write <path> "<content>"
// Replace the whole file content; replies with the stored length.
func (s *Shell) doWrite(line string, fields []string) {
	content, ok := quotedContent(line)
	if !ok || len(fields) < 2 {
		s.reply(respFail)
		return
	}
	node, err := filesystem.Resolve(s.fs.Root(), fields[1])
	if err != nil {
		s.reply(respFail)
		return
	}
	if err := s.fs.WriteContent(node, content); err != nil {
		s.reply(respFail)
		return
	}
	s.reply(fmt.Sprintf("%s %d", respOK, len(content)))
}

// delete <path> / delete_r <path>
// Delete a resource, optionally with its whole subtree.
func (s *Shell) doDelete(fields []string, recursive bool) {
	if len(fields) < 2 {
		s.reply(respFail)
		return
	}
	node, err := filesystem.Resolve(s.fs.Root(), fields[1])
	if err != nil {
		s.reply(respFail)
		return
	}
	if recursive {
		s.fs.DeleteRecursive(node)
	} else if err := s.fs.Delete(node); err != nil {
		s.reply(respFail)
		return
	}
	s.reply(respOK)
}

// find <name>
// Print the full path of every node with the given name, lexicographically
// sorted. The engine returns matches unordered; ordering is owned here.
func (s *Shell) doFind(fields []string) {
	if len(fields) < 2 {
		s.reply(respFail)
		return
	}
	matches := filesystem.FindByName(s.fs.Root(), fields[1])
	if len(matches) == 0 {
		s.reply(respFail)
		return
	}
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		paths = append(paths, m.Path())
	}
	sort.Strings(paths)
	for _, p := range paths {
		s.reply(fmt.Sprintf("%s %s", respOK, p))
	}
}

func (s *Shell) reply(msg string) {
	fmt.Fprintln(s.out, msg)
}

// quotedContent extracts the write payload: the span after the first double
// quote up to the next quote, or to the end of the line if the closing quote
// is missing. A line without any quote has no payload.
func quotedContent(line string) (string, bool) {
	i := strings.IndexByte(line, '"')
	if i < 0 {
		return "", false
	}
	rest := line[i+1:]
	if j := strings.IndexByte(rest, '"'); j >= 0 {
		rest = rest[:j]
	} else {
		rest = strings.TrimRight(rest, "\r\n")
	}
	return rest, true
}
