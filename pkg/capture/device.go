package capture

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// DeviceSource 从采集卡/摄像头设备取帧
type DeviceSource struct {
	cap    *gocv.VideoCapture
	mat    gocv.Mat
	width  int
	height int
}

// NewDeviceSource 打开编号为 index 的视频设备，
// 输出帧统一缩放到 width x height
func NewDeviceSource(index, width, height int) (*DeviceSource, error) {
	cap, err := gocv.OpenVideoCapture(index)
	if err != nil {
		return nil, fmt.Errorf("打开视频设备 %d 失败: %w", index, err)
	}
	return &DeviceSource{
		cap:    cap,
		mat:    gocv.NewMat(),
		width:  width,
		height: height,
	}, nil
}

func (s *DeviceSource) Frame() (*image.RGBA, error) {
	if ok := s.cap.Read(&s.mat); !ok {
		return nil, fmt.Errorf("视频设备读取失败")
	}
	if s.mat.Empty() {
		return nil, fmt.Errorf("视频设备返回空帧")
	}

	if s.mat.Cols() != s.width || s.mat.Rows() != s.height {
		gocv.Resize(s.mat, &s.mat, image.Pt(s.width, s.height), 0, 0, gocv.InterpolationLinear)
	}

	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("帧转换失败: %w", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("帧类型异常: %T", img)
	}
	return rgba, nil
}

func (s *DeviceSource) Close() error {
	s.mat.Close()
	return s.cap.Close()
}
