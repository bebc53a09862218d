package server

import (
	"html/template"
	"net/http"

	"github.com/Vijay8143/lyrics-explorer/internal/history"
	"github.com/Vijay8143/lyrics-explorer/internal/wordcloud"
)

type pageData struct {
	DefaultArtist string
	Colormaps     []string
	Recent        []history.Entry
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		DefaultArtist: s.opts.DefaultArtist,
		Colormaps:     wordcloud.Colormaps(),
	}

	if s.history != nil {
		recent, err := s.history.Recent(r.Context(), s.opts.HistorySize)
		if err != nil {
			s.logger.Warn().Err(err).Msg("failed to load search history")
		} else {
			data.Recent = recent
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error().Err(err).Msg("failed to render index page")
	}
}

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Lyrics Explorer</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 960px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { text-align: center; }
  form.search { display: flex; gap: 0.5rem; flex-wrap: wrap; margin-bottom: 1rem; }
  form.search input[type=text] { flex: 1; min-width: 12rem; padding: 0.5rem; }
  .controls { display: flex; gap: 1rem; flex-wrap: wrap; align-items: center; margin-bottom: 1.5rem; font-size: 0.9rem; }
  .controls label { display: flex; gap: 0.3rem; align-items: center; }
  .stats { display: flex; gap: 2rem; margin: 1rem 0; }
  .stats div { background: #f8f9fa; border-radius: 8px; padding: 0.8rem 1.2rem; text-align: center; }
  .stats strong { display: block; font-size: 1.5rem; }
  table { border-collapse: collapse; }
  td, th { padding: 0.3rem 0.8rem; border-bottom: 1px solid #ddd; text-align: left; }
  pre.lyrics { background: #f8f9fa; border-radius: 8px; padding: 1rem; white-space: pre-wrap; max-height: 24rem; overflow-y: auto; }
  img.cloud { max-width: 100%; border-radius: 8px; }
  .error { color: #b00020; }
  .columns { display: flex; gap: 2rem; flex-wrap: wrap; }
  .columns > div { flex: 1; min-width: 18rem; }
</style>
</head>
<body>
<h1>&#127926; Lyrics Explorer</h1>

<form class="search" onsubmit="search(); return false;">
  <input type="text" id="title" placeholder="Song title, e.g. Love Story" required>
  <input type="text" id="artist" placeholder="Artist (default: {{.DefaultArtist}})">
  <button type="submit">Search</button>
</form>

<div class="controls">
  <label>Color scheme
    <select id="colormap">
      {{range .Colormaps}}<option value="{{.}}"{{if eq . "inferno"}} selected{{end}}>{{.}}</option>{{end}}
    </select>
  </label>
  <label>Max words <input type="number" id="max_words" value="150" min="10" max="300" style="width:4.5rem"></label>
  <label>Width <input type="number" id="width" value="800" min="100" max="4096" style="width:4.5rem"></label>
  <label>Height <input type="number" id="height" value="400" min="100" max="4096" style="width:4.5rem"></label>
  <label>Background <input type="color" id="background" value="#ffffff"></label>
</div>

<p id="message"></p>

<div id="result" style="display:none">
  <h2 id="song-title"></h2>
  <div class="stats">
    <div><strong id="total-words"></strong>Total words</div>
    <div><strong id="unique-words"></strong>Unique words</div>
    <div><strong id="unique-ratio"></strong>Unique ratio</div>
  </div>
  <h3>&#9729;&#65039; Word cloud</h3>
  <img class="cloud" id="cloud" alt="word cloud">
  <div class="columns">
    <div>
      <h3>&#128202; Most common words</h3>
      <table id="top-words"><tr><th>Word</th><th>Count</th></tr></table>
    </div>
    <div>
      <h3>&#128220; Lyrics</h3>
      <pre class="lyrics" id="lyrics"></pre>
    </div>
  </div>
</div>

{{if .Recent}}
<h3>Recent searches</h3>
<table>
  <tr><th>Title</th><th>Artist</th><th>Found</th><th>Words</th></tr>
  {{range .Recent}}
  <tr><td>{{.Title}}</td><td>{{.Artist}}</td><td>{{if .Found}}yes{{else}}no{{end}}</td><td>{{.TotalWords}}</td></tr>
  {{end}}
</table>
{{end}}

<script>
async function search() {
  const title = document.getElementById('title').value.trim();
  const artist = document.getElementById('artist').value.trim();
  const message = document.getElementById('message');
  const result = document.getElementById('result');
  message.textContent = 'Searching…';
  message.className = '';
  result.style.display = 'none';

  const params = new URLSearchParams({title: title});
  if (artist) params.set('artist', artist);

  try {
    const resp = await fetch('/api/song?' + params);
    const data = await resp.json();
    if (!resp.ok) {
      message.textContent = data.error || 'Something went wrong.';
      message.className = 'error';
      return;
    }
    if (!data.found) {
      message.textContent = 'Song not found. Check the title and try again.';
      message.className = 'error';
      return;
    }

    message.textContent = '';
    document.getElementById('song-title').textContent = data.title + ' — ' + data.artist;
    document.getElementById('total-words').textContent = data.totalWords;
    document.getElementById('unique-words').textContent = data.uniqueWords;
    document.getElementById('unique-ratio').textContent = (data.uniqueRatio * 100).toFixed(1) + '%';
    document.getElementById('lyrics').textContent = data.lyrics;

    const table = document.getElementById('top-words');
    table.innerHTML = '<tr><th>Word</th><th>Count</th></tr>';
    for (const wc of data.topWords) {
      const row = table.insertRow();
      row.insertCell().textContent = wc.word;
      row.insertCell().textContent = wc.count;
    }

    const cloudParams = new URLSearchParams(params);
    cloudParams.set('colormap', document.getElementById('colormap').value);
    cloudParams.set('max_words', document.getElementById('max_words').value);
    cloudParams.set('width', document.getElementById('width').value);
    cloudParams.set('height', document.getElementById('height').value);
    cloudParams.set('background', document.getElementById('background').value);
    document.getElementById('cloud').src = '/wordcloud.png?' + cloudParams;

    result.style.display = 'block';
  } catch (err) {
    message.textContent = 'Request failed: ' + err;
    message.className = 'error';
  }
}
</script>
</body>
</html>
`
