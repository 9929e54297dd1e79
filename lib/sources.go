package lib

import (
	"io/ioutil"
	"path"
	"sort"
	"strings"
)

const SourceExt = ".sexp"

type Source struct {
	Name string
	Text string
}

func (s *Source) Scan() ScanResult {
	return Scan(s.Text)
}

// ReadSourceDir loads every .sexp file in dir, ordered by name. Other files
// and subdirectories are ignored.
func ReadSourceDir(dir string) ([]*Source, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	sources := []*Source{}
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), SourceExt) {
			continue
		}

		bytes, err := ioutil.ReadFile(path.Join(dir, file.Name()))
		if err != nil {
			return nil, err
		}

		sources = append(sources, &Source{
			Name: sourceName(file.Name()),
			Text: strings.TrimRight(string(bytes), "\r\n"),
		})
	}

	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Name < sources[j].Name
	})
	return sources, nil
}

func sourceName(fileName string) string {
	return strings.TrimSuffix(fileName, SourceExt)
}
