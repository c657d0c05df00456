package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/metroplanner/pkg"
	"go.uber.org/zap"
)

// User is one websocket client. Every text message is a route request in the computeRoutes JSON
// shape, a request without algorithm compares all algorithms.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) readRequest() (*routeRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	req := &routeRequest{}
	if err := json.Unmarshal(payload, req); err != nil {
		return req, &requestError{err}
	}
	return req, nil
}

type requestError struct {
	err error
}

func (e *requestError) Error() string {
	return e.err.Error()
}

// HandleRequest answers one message. Only connection failures are returned, request failures are
// written back to the client.
func (u *User) HandleRequest() error {
	req, err := u.readRequest()
	if err != nil {
		if rerr, ok := err.(*requestError); ok {
			return u.writeError(http.StatusBadRequest, rerr.Error())
		}
		return err
	}
	if req == nil {
		return nil
	}

	if err := u.hub.validator.Struct(req); err != nil {
		return u.writeError(http.StatusBadRequest, err.Error())
	}
	if err := req.checkPoints(); err != nil {
		return u.writeError(http.StatusBadRequest, err.Error())
	}
	topology, err := pkg.ParseTopology(req.Topology)
	if err != nil {
		return u.writeError(http.StatusBadRequest, err.Error())
	}
	timeOfDay := timeOfDayOrDefault(req.TimeOfDay)

	if req.Algorithm == "" {
		routes, err := u.hub.routingService.CompareRoutes(topology, req.origin(), req.destination(), timeOfDay)
		if err != nil {
			return u.writeServiceError(err)
		}
		return u.write(envelope{"data": NewCompareRoutesResponse(routes)})
	}

	algorithm, err := pkg.ParseAlgorithm(req.Algorithm)
	if err != nil {
		return u.writeError(http.StatusBadRequest, err.Error())
	}
	route, err := u.hub.routingService.ComputeRoute(topology, algorithm, req.origin(), req.destination(), timeOfDay)
	if err != nil {
		return u.writeServiceError(err)
	}
	return u.write(envelope{"data": NewRouteResponse(route)})
}

func (u *User) writeServiceError(err error) error {
	status, message := statusCode(err)
	if status == http.StatusInternalServerError {
		u.hub.log.Error("websocket route request failed", zap.Error(err))
	}
	return u.writeError(status, message)
}

func (u *User) writeError(status int, message string) error {
	return u.write(newErrorResponse(status, message))
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

type Hub struct {
	mu             sync.RWMutex
	seq            uint
	us             []*User
	ns             map[uint]*User
	routingService RoutingService
	validator      *requestValidator
	log            *zap.Logger
}

func NewHub(routingService RoutingService, log *zap.Logger) *Hub {
	return &Hub{
		ns:             make(map[uint]*User),
		us:             make([]*User, 0),
		routingService: routingService,
		validator:      newRequestValidator(),
		log:            log,
	}
}

func (h *Hub) Register(conn io.ReadWriteCloser) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

// Serve answers requests on conn until the client goes away.
func (h *Hub) Serve(conn io.ReadWriteCloser) {
	user := h.Register(conn)
	defer h.Remove(user)

	for {
		if err := user.HandleRequest(); err != nil {
			if _, closed := err.(wsutil.ClosedError); !closed && err != io.EOF {
				h.log.Info("websocket connection dropped", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs

	user.conn.Close()
}

// RemoveAllUser closes every connection.
func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, len(h.us))
	copy(users, h.us)
	h.mu.RUnlock()

	for _, user := range users {
		h.Remove(user)
	}
}
