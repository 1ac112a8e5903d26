package web

import (
	"html/template"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-webapp/internal/entity"
)

type templates struct {
	page *template.Template
}

type pageData struct {
	Game  *entity.Game
	Theme string
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"inWinLine": func(line []int, idx int) bool {
			for _, cell := range line {
				if cell == idx {
					return true
				}
			}
			return false
		},
	}
}

func loadTemplates() *templates {
	page := template.Must(template.New("page").Funcs(funcs()).Parse(pageTemplate))
	return &templates{page: page}
}

// renderPage - renders the whole page for the game in the given theme.
func (that *Server) renderPage(w http.ResponseWriter, game *entity.Game, theme string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	data := pageData{Game: game, Theme: theme}
	if err := that.tpl.page.Execute(w, data); err != nil {
		that.logger.Error("failed to render page", "error", err)
	}
}

const pageTemplate = `<!doctype html>
<html>
<head>
<meta charset="utf-8"/>
<title>Tic-Tac-Toe</title>
<style>
  body { font-family: sans-serif; text-align: center; margin-top: 2rem; }
  body.light { background: #ffffff; color: #1a1a1a; }
  body.dark { background: #1a1a1a; color: #eeeeee; }
  .board { display: grid; grid-template-columns: repeat(3, 72px); gap: 6px; justify-content: center; margin: 1.5rem auto; }
  .cell button { width: 72px; height: 72px; font-size: 2rem; cursor: pointer; }
  .cell button:disabled { cursor: default; }
  body.dark .cell button { background: #333; color: #eee; border-color: #555; }
  .cell.win button { background: #7fbf7f; }
  body.dark .cell.win button { background: #2e7d32; }
  .scoreboard { margin: 1rem; }
  .controls form { display: inline-block; margin: 0 0.25rem; }
</style>
</head>
<body class="{{.Theme}}">
  <h1>Tic-Tac-Toe</h1>

  <div class="status">
    {{if .Game.HasWinner}}
      <strong>{{.Game.Winner}} wins!</strong>
    {{else if .Game.IsTie}}
      <strong>Draw.</strong>
    {{else}}
      Turn: <strong>{{.Game.Turn}}</strong>
    {{end}}
  </div>

  <div class="board">
    {{$game := .Game}}
    {{range $idx, $mark := .Game.Board}}
    <div class="cell{{if inWinLine $game.WinLine $idx}} win{{end}}">
      <form action="/move" method="post">
        <input type="hidden" name="cell" value="{{$idx}}">
        <button type="submit"{{if or $mark $game.IsFinished}} disabled{{end}}>{{$mark}}</button>
      </form>
    </div>
    {{end}}
  </div>

  <div class="scoreboard">
    X: {{.Game.Score.X}} &middot; O: {{.Game.Score.O}} &middot; Draws: {{.Game.Score.Draws}}
  </div>

  <div class="controls">
    <form action="/new-round" method="post"><button type="submit">New round</button></form>
    <form action="/reset-scores" method="post"><button type="submit">Reset scores</button></form>
    <form action="/theme" method="post"><button type="submit">{{if eq .Theme "dark"}}Light{{else}}Dark{{end}} theme</button></form>
  </div>
</body>
</html>
`
