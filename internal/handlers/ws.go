package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/katkov/voltorb-server/internal/voltorb"
)

// executeCommand applies one text command to the game. Supported:
//
//	reveal <row> <col> <value>
//	forfeit
func executeCommand(game *voltorb.GameState, command string) (voltorb.Solution, error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return voltorb.Solution{}, fmt.Errorf("empty command")
	}
	switch fields[0] {
	case "reveal":
		var r, c, v int
		if len(fields) != 4 {
			return voltorb.Solution{}, fmt.Errorf("reveal wants 3 arguments")
		}
		if _, err := fmt.Sscanf(
			strings.Join(fields[1:], " "), "%d %d %d", &r, &c, &v,
		); err != nil {
			return voltorb.Solution{}, fmt.Errorf("bad reveal arguments: %w", err)
		}
		return game.Reveal(r, c, voltorb.Cell(v))
	case "forfeit":
		game.Forfeit()
		return game.Solve(), nil
	default:
		return voltorb.Solution{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game := g.fetchGame(w, r)
	if game == nil {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	sol := game.Solve()
	if err := conn.WriteJSON(NewGameSessionDTO(session, game, &sol)); err != nil {
		g.logger.Error("unable to send session state", "error", err)
		return
	}

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure,
				websocket.CloseGoingAway) {
				g.logger.Warn("websocket read", "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		sol, err := executeCommand(game, strings.TrimSpace(string(message)))
		if err != nil {
			if werr := conn.WriteJSON(wrapError(err)); werr != nil {
				g.logger.Error("unable to send error", "error", werr)
				return
			}
			continue
		}

		session, err = g.repo.SaveGameState(
			r.Context(), session.GameSessionId, game,
		)
		if err != nil {
			g.logger.Error("unable to update session in db", "error", err)
			return
		}

		if err := conn.WriteJSON(NewGameSessionDTO(session, game, &sol)); err != nil {
			g.logger.Error("unable to send session state", "error", err)
			return
		}

		if game.Over() {
			return
		}
	}
}
