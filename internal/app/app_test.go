package app

import (
	"context"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/mentorme/MentorMe/internal/config"
	"github.com/mentorme/MentorMe/internal/di"
	"github.com/mentorme/MentorMe/internal/services"
)

// 测试前的设置工作
func setupTest(t *testing.T) string {
	// 重置全局应用实例
	instance = nil

	tempDir, err := os.MkdirTemp("", "app_test_*")
	if err != nil {
		t.Fatalf("创建临时测试目录失败: %v", err)
	}

	os.MkdirAll(filepath.Join(tempDir, "logs"), 0755)
	os.MkdirAll(filepath.Join(tempDir, "data"), 0755)

	return tempDir
}

// 测试后的清理工作
func cleanupTest(tempDir string) {
	os.RemoveAll(tempDir)
	instance = nil
}

// 测试创建模拟服务器
type mockServer struct {
	ShutdownCalled bool
}

func (m *mockServer) ListenAndServe() error {
	return nil
}

func (m *mockServer) Shutdown(ctx context.Context) error {
	m.ShutdownCalled = true
	return nil
}

// TestGetApp 测试获取应用实例
func TestGetApp(t *testing.T) {
	instance = nil

	app1 := GetApp()
	if app1 == nil {
		t.Fatal("GetApp应该返回一个非nil的应用实例")
	}

	// 再次调用，应该返回相同的实例（单例模式）
	app2 := GetApp()
	if app1 != app2 {
		t.Fatal("GetApp应该返回相同的实例")
	}

	if app1.stopChan == nil {
		t.Fatal("应用实例的stopChan应该被初始化")
	}
}

// TestInitLogger 测试日志初始化
func TestInitLogger(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	logDir := filepath.Join(tempDir, "custom_logs")

	err := initLogger(logDir)
	if err != nil {
		t.Fatalf("初始化日志系统失败: %v", err)
	}

	// 验证日志目录已创建
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("日志目录应该已被创建")
	}

	// 验证日志文件已创建（名称包含当天日期）
	files, _ := os.ReadDir(logDir)
	if len(files) == 0 {
		t.Error("应该已创建日志文件")
	}
}

// TestInitServices 测试服务按依赖顺序注册
func TestInitServices(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	di.GetContainer().Clear()

	cfg := &config.Config{
		DataDir:      filepath.Join(tempDir, "data"),
		ReplyDelayMS: 0,
	}

	err := InitServices(cfg)
	if err != nil {
		t.Fatalf("服务初始化失败: %v", err)
	}

	container := di.GetContainer()

	// 验证基础服务已注册
	basicServices := []string{"storage", "engine", "profile", "mentor", "swipe", "goal", "notification"}
	for _, serviceName := range basicServices {
		if service := container.Get(serviceName); service == nil {
			t.Errorf("基础服务 %s 应该已被注册", serviceName)
		}
	}

	// 验证依赖服务已注册
	dependentServices := []string{"request", "chat"}
	for _, serviceName := range dependentServices {
		if service := container.Get(serviceName); service == nil {
			t.Errorf("依赖服务 %s 应该已被注册", serviceName)
		}
	}

	// 验证服务类型正确
	if _, ok := container.Get("chat").(*services.ChatService); !ok {
		t.Error("聊天服务类型不正确")
	}

	if _, ok := container.Get("request").(*services.RequestService); !ok {
		t.Error("请求服务类型不正确")
	}
}

// TestRun 测试应用运行和关闭
func TestRun(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	testApp := &App{
		config: &config.Config{
			Port: "8081",
		},
		stopChan: make(chan os.Signal, 1),
	}
	instance = testApp

	// 创建模拟服务器并设置
	mockSrv := &mockServer{}
	testApp.server = mockSrv

	// 模拟发送停止信号
	go func() {
		time.Sleep(100 * time.Millisecond)
		testApp.stopChan <- syscall.SIGTERM
	}()

	err := Run()
	if err != nil {
		t.Fatalf("运行应用失败: %v", err)
	}

	if !mockSrv.ShutdownCalled {
		t.Error("应该调用了server.Shutdown")
	}
}

// TestRunWithoutInitialize 测试未初始化时运行
func TestRunWithoutInitialize(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	instance = &App{
		stopChan: make(chan os.Signal, 1),
	}

	if err := Run(); err == nil {
		t.Error("未初始化的应用运行时应该返回错误")
	}
}

// TestGetConfig 测试获取应用配置
func TestGetConfig(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	testConfig := &config.Config{
		Port:      "9000",
		DebugMode: true,
	}

	testApp := &App{
		config: testConfig,
	}
	instance = testApp

	cfg := testApp.GetConfig()
	if cfg != testConfig {
		t.Error("GetConfig应该返回应用的配置")
	}
}

// TestGetDIContainer 测试获取依赖注入容器
func TestGetDIContainer(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	container := GetDIContainer()
	if container == nil {
		t.Fatal("GetDIContainer应该返回一个非nil的容器")
	}

	// 验证是相同的容器实例
	container2 := di.GetContainer()
	if container != container2 {
		t.Error("应该返回相同的DI容器实例")
	}
}

// TestIsDebugMode 测试调试模式检查
func TestIsDebugMode(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	// 测试无应用实例的情况
	instance = nil
	if IsDebugMode() {
		t.Error("无应用实例时IsDebugMode应该返回false")
	}

	// 测试有应用实例但无配置的情况
	testApp := &App{}
	instance = testApp
	if IsDebugMode() {
		t.Error("应用无配置时IsDebugMode应该返回false")
	}

	// 测试调试模式开启的情况
	testApp.config = &config.Config{
		DebugMode: true,
	}
	if !IsDebugMode() {
		t.Error("调试模式开启时IsDebugMode应该返回true")
	}

	// 测试调试模式关闭的情况
	testApp.config.DebugMode = false
	if IsDebugMode() {
		t.Error("调试模式关闭时IsDebugMode应该返回false")
	}
}

// TestCleanup 测试资源清理
func TestCleanup(t *testing.T) {
	tempDir := setupTest(t)
	defer cleanupTest(tempDir)

	testApp := &App{
		config:   &config.Config{},
		stopChan: make(chan os.Signal, 1),
	}
	instance = testApp

	container := di.GetContainer()
	container.Register("profile", &services.ProfileService{})

	testApp.cleanup()

	if container.Has("profile") {
		t.Error("清理后容器应该为空")
	}
}
