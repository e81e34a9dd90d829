package dispatch

import (
	"github.com/xraph/dispatch/config"
	"github.com/xraph/dispatch/handler"
	"github.com/xraph/dispatch/logger"
	"github.com/xraph/dispatch/response"
	"github.com/xraph/dispatch/routing"
	"github.com/xraph/dispatch/server"
	"github.com/xraph/dispatch/service"
)

type Handler = handler.Handler
type Layered = handler.Layered
type Unit = handler.Unit

type Response = response.Response
type IntoResponse = response.IntoResponse

type Service = service.Service
type Infallible = service.Infallible
type Layer = service.Layer

type OnMethod = routing.OnMethod
type MethodFilter = routing.MethodFilter
type EmptyRouter = routing.EmptyRouter

type Config = config.Config
type Logger = logger.Logger
type Server = server.Server

var (
	IntoService = handler.IntoService
	HandleError = service.HandleError

	Get     = routing.Get
	Post    = routing.Post
	Put     = routing.Put
	Delete  = routing.Delete
	Patch   = routing.Patch
	Head    = routing.Head
	Options = routing.Options
	Trace   = routing.Trace
	Connect = routing.Connect
	Any     = routing.Any
	On      = routing.On

	DefaultConfig = config.Default
	LoadConfig    = config.Load
	NewServer     = server.New
)

