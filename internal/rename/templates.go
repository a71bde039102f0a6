package rename

// The template lists are fixed and ordered; configuration selects one entry
// per media type by index. Placeholders form a closed set: {title}, {season},
// {episode}, {episode_title} for TV and {title}, {year} for movies.
// {name:02} zero-pads integer values to the given minimum width.

// TVTemplates are the selectable naming formats for series episodes.
var TVTemplates = []string{
	"{title} S{season:02}E{episode:02}",
	"{title} S{season:02}E{episode:02} {episode_title}",
	"{title} - {season}x{episode:02}",
	"{title} - Temporada {season} Episodio {episode:02}",
}

// MovieTemplates are the selectable naming formats for movies.
var MovieTemplates = []string{
	"{title} ({year})",
	"{title} [{year}]",
	"{title} {year}",
	"{title} - {year}",
}
