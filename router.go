// 路由模块

package response

import (
	"net/http"
)

type ActionFunc func(c *Context) (data interface{})

type Route struct {
	ActionCode string
	ActionFunc ActionFunc
	Hooks      map[string][]ActionFunc
}

// NewRoute return a new route.
func NewRoute(actionCode string, actionFunc ActionFunc) *Route {
	return &Route{
		actionCode, actionFunc, make(map[string][]ActionFunc),
	}
}

// Hook add set hook action at specified tag.
func (r *Route) Hook(tag string, actionFunc ActionFunc) *Route {
	if _, has := r.Hooks[tag]; !has {
		r.Hooks[tag] = make([]ActionFunc, 0, 1)
	}
	r.Hooks[tag] = append(r.Hooks[tag], actionFunc)
	return r
}

// buildActionMap return an action map according to routes.
// The key of the map is action code.
func buildActionMap(routes []*Route) (actionMap map[string]*Route) {
	actionMap = make(map[string]*Route)
	for _, route := range routes {
		actionMap[route.ActionCode] = route
	}
	return actionMap
}

func runHooks(c *Context, hooks map[string][]ActionFunc, tag string) interface{} {
	actions, has := hooks[tag]
	if !has {
		return nil
	}
	for _, action := range actions {
		if data := action(c); data != nil {
			return data
		}
	}
	return nil
}

// newApiHandler return a handler func using by http.HandleFunc.
func newApiHandler(app *App, routes []*Route) func(w http.ResponseWriter, r *http.Request) {
	// 转化为MAP，提高性能
	actionMap := buildActionMap(routes)

	return func(w http.ResponseWriter, r *http.Request) {
		// 只支持GET和POST
		if r.Method != "GET" && r.Method != "POST" {
			http.Error(w, "Unsupported request method!", http.StatusMethodNotAllowed)
			return
		}

		ctx, err := NewContext(app, w, r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// 系统维护中
		if app.UnderMaintenance {
			WriteResponse(ctx, ctx.Error.NewGroupError("global", errorSystemMaintenance))
			return
		}

		var resData interface{}

		apiAction := ctx.Input.GetAction()
		route, ok := actionMap[apiAction]
		if apiAction == "" || !ok {
			WriteResponse(ctx, ctx.Error.NewGroupError("global", errorActionNotExist))
			return
		}

		// Action之前的操作
		if resData = runHooks(ctx, app.Hooks, "BeforeAction"); resData != nil {
			WriteResponse(ctx, resData)
			return
		}
		if resData = runHooks(ctx, route.Hooks, "BeforeAction"); resData != nil {
			WriteResponse(ctx, resData)
			return
		}

		if route.ActionFunc != nil {
			// 执行 action
			resData = route.ActionFunc(ctx)
		}

		// Action之后的操作
		for _, hooks := range []map[string][]ActionFunc{route.Hooks, app.Hooks} {
			if afterActions, has := hooks["AfterAction"]; has {
				for _, afterAction := range afterActions {
					ctx.Set("result", resData)
					data := afterAction(ctx)
					if resData == nil && data != nil {
						resData = data
					}
				}
			}
		}

		// 输出结果
		// action中已通过Builder.Send输出时，WriteResponse不再执行
		WriteResponse(ctx, resData)
	}
}
