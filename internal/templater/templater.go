package templater

import (
	"regexp"
	"strconv"
	"strings"

	"anchira/internal/domain"
	"anchira/internal/utils"
)

var templatePattern = regexp.MustCompile(`{((\w+?)(:.*?)?)}`)

type Templater struct {
	Manga domain.Manga
}

func New(manga domain.Manga) *Templater {
	return &Templater{
		Manga: manga,
	}
}

func (t *Templater) handleID(options string) string {
	// the numeric id is the second to last segment of the gallery URL
	parts := strings.Split(t.Manga.URL, "/")
	if len(parts) < 2 {
		return ""
	}

	id, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return parts[len(parts)-2]
	}

	if options == "" {
		return strconv.Itoa(id)
	}

	length, _ := strconv.ParseInt(strings.ReplaceAll(options, ":", ""), 10, 32)
	return utils.PadInt(id, int(length))
}

func (t *Templater) handleTitle(options string) string {
	if t.Manga.Title == "" {
		return ""
	}

	cleanString := strings.ReplaceAll(options, ":", "")
	return strings.ReplaceAll(cleanString, "<.>", t.Manga.Title)
}

func (t *Templater) handleArtist(options string) string {
	if t.Manga.Artist == "" {
		return ""
	}

	cleanString := strings.ReplaceAll(options, ":", "")
	return strings.ReplaceAll(cleanString, "<.>", t.Manga.Artist)
}

func (t *Templater) ExecTemplate(template string) string {
	newString := template
	for _, match := range templatePattern.FindAllStringSubmatch(template, -1) {
		replace := match[0]

		varName := match[2]
		switch varName {
		case "id":
			options := ""
			if len(match) > 3 {
				options = match[3]
			}
			replace = t.handleID(options)
		case "title":
			replace = t.handleTitle(match[3])
		case "artist":
			replace = t.handleArtist(match[3])
		}

		newString = strings.Replace(newString, match[0], replace, 1)
	}

	return newString
}
