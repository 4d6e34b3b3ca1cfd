package agentController

import (
	"log"
	"strconv"

	"architect/middleware"
	"architect/utils"
	agentValidator "architect/validators/agent"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Chat forwards one stateless turn to the AI agent
func Chat(c *fiber.Ctx) error {
	ident, ok := middleware.CurrentIdentity(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChat").(*agentValidator.ChatRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	response, err := utils.Chat(ident.UserID, reqData.Message, reqData.CurriculumID)
	if err != nil {
		log.Printf("Error getting agent response for user %d: %v", ident.UserID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Agent responded successfully!", fiber.Map{
		"response": response,
	})
}

// Search merges web and vector search results for learning material
func Search(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSearch").(*agentValidator.SearchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	results := utils.SearchResources(reqData.Query)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Search completed successfully!", fiber.Map{
		"results": results,
	})
}

type socketFrame struct {
	Message      string `json:"message"`
	CurriculumID uint   `json:"curriculum_id"`
}

type socketReply struct {
	Response string `json:"response"`
}

type socketError struct {
	Error string `json:"error"`
}

// ChatSocket returns the per-connection handler for the realtime chat
// channel. Each inbound frame is forwarded to the agent and the reply is
// written back on the same connection; disconnect removes the connection
// from the hub.
func ChatSocket(hub *utils.ChatHub) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		connID := hub.Register(conn)
		defer func() {
			hub.Unregister(connID)
			conn.Close()
		}()

		userID64, err := strconv.ParseUint(conn.Params("user_id"), 10, 32)
		if err != nil {
			conn.WriteJSON(socketError{Error: "Invalid user id"})
			return
		}
		userID := uint(userID64)

		log.Printf("[AGENT-WS] Connection %s opened for user %d (%d live)", connID, userID, hub.Count())

		for {
			var frame socketFrame
			if err := conn.ReadJSON(&frame); err != nil {
				// Covers both malformed frames and closed connections
				log.Printf("[AGENT-WS] Connection %s closed: %v", connID, err)
				return
			}

			response, err := utils.Chat(userID, frame.Message, frame.CurriculumID)
			if err != nil {
				log.Printf("[AGENT-WS] Agent error on connection %s: %v", connID, err)
				if writeErr := conn.WriteJSON(socketError{Error: err.Error()}); writeErr != nil {
					return
				}
				continue
			}

			if err := conn.WriteJSON(socketReply{Response: response}); err != nil {
				return
			}
		}
	}
}
