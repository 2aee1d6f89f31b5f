package sink

import (
	"fmt"
	"hash/fnv"
	"os"
	"time"

	"github.com/suyashkumar/dicom"
	"github.com/suyashkumar/dicom/pkg/frame"
	"github.com/suyashkumar/dicom/pkg/tag"

	"github.com/mrsinham/thermalforge/internal/heatmap"
)

// Secondary Capture Image Storage; the heatmap is synthesized, not
// acquired by a conforming device.
const secondaryCaptureSOPClassUID = "1.2.840.10008.5.1.4.1.1.7"

// DICOMOptions identifies the written instance. Zero-value fields fall
// back to generic study metadata.
type DICOMOptions struct {
	// Seed keys the deterministic UIDs; the same seed and instance
	// numbering reproduce the same UID hierarchy.
	Seed uint64

	PatientName      string
	PatientID        string
	StudyDescription string

	// InstanceNumber / TotalInstances place the file in its series
	// (1-based). Zero values are treated as a single-instance series.
	InstanceNumber int
	TotalInstances int
}

// WriteDICOM writes img as an 8-bit MONOCHROME2 secondary-capture
// DICOM file with modality TG.
func WriteDICOM(path string, img *heatmap.Image, opts DICOMOptions) error {
	if opts.PatientName == "" {
		opts.PatientName = "SYNTHETIC^THERMAL"
	}
	if opts.PatientID == "" {
		opts.PatientID = fmt.Sprintf("TF%08d", opts.Seed%100000000)
	}
	if opts.StudyDescription == "" {
		opts.StudyDescription = "Synthetic thermography"
	}
	if opts.InstanceNumber == 0 {
		opts.InstanceNumber = 1
	}
	if opts.TotalInstances == 0 {
		opts.TotalInstances = 1
	}

	pixelsPerFrame := img.Width * img.Height
	nativeFrame := frame.NewNativeFrame[uint8](8, img.Height, img.Width, pixelsPerFrame, 1)
	copy(nativeFrame.RawData, img.Pix)

	pixelDataInfo := dicom.PixelDataInfo{
		Frames: []*frame.Frame{
			{
				Encapsulated: false,
				NativeData:   nativeFrame,
			},
		},
	}

	now := time.Now()
	studyUID := deterministicUID("study", opts.Seed, 0)
	seriesUID := deterministicUID("series", opts.Seed, 0)
	sopUID := deterministicUID("instance", opts.Seed, opts.InstanceNumber)

	elements := []*dicom.Element{
		mustNewElement(tag.TransferSyntaxUID, []string{"1.2.840.10008.1.2.1"}),
		mustNewElement(tag.SOPClassUID, []string{secondaryCaptureSOPClassUID}),
		mustNewElement(tag.SOPInstanceUID, []string{sopUID}),
		mustNewElement(tag.StudyInstanceUID, []string{studyUID}),
		mustNewElement(tag.SeriesInstanceUID, []string{seriesUID}),
		mustNewElement(tag.StudyID, []string{"1"}),
		mustNewElement(tag.SeriesNumber, []string{"1"}),
		mustNewElement(tag.InstanceNumber, []string{fmt.Sprintf("%d", opts.InstanceNumber)}),
		mustNewElement(tag.Modality, []string{"TG"}),
		mustNewElement(tag.ConversionType, []string{"SYN"}),
		mustNewElement(tag.PatientName, []string{opts.PatientName}),
		mustNewElement(tag.PatientID, []string{opts.PatientID}),
		mustNewElement(tag.StudyDescription, []string{opts.StudyDescription}),
		mustNewElement(tag.SeriesDescription, []string{fmt.Sprintf("Thermal heatmap %d/%d", opts.InstanceNumber, opts.TotalInstances)}),
		mustNewElement(tag.StudyDate, []string{now.Format("20060102")}),
		mustNewElement(tag.StudyTime, []string{now.Format("150405")}),
		mustNewElement(tag.Rows, []int{img.Height}),
		mustNewElement(tag.Columns, []int{img.Width}),
		mustNewElement(tag.BitsAllocated, []int{8}),
		mustNewElement(tag.BitsStored, []int{8}),
		mustNewElement(tag.HighBit, []int{7}),
		mustNewElement(tag.PixelRepresentation, []int{0}),
		mustNewElement(tag.SamplesPerPixel, []int{1}),
		mustNewElement(tag.PhotometricInterpretation, []string{"MONOCHROME2"}),
		mustNewElement(tag.PixelData, pixelDataInfo),
	}

	return writeDatasetToFile(path, dicom.Dataset{Elements: elements})
}

// writeDatasetToFile writes a DICOM dataset to a file.
func writeDatasetToFile(path string, ds dicom.Dataset, opts ...dicom.WriteOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return dicom.Write(f, ds, opts...)
}

// mustNewElement creates a DICOM element and panics on failure. The
// inputs are all fixed-format values built above, so a failure is a
// bug rather than a runtime condition.
func mustNewElement(t tag.Tag, value interface{}) *dicom.Element {
	elem, err := dicom.NewElement(t, value)
	if err != nil {
		panic(fmt.Sprintf("failed to create element %v: %v", t, err))
	}
	return elem
}

// deterministicUID derives a dotted-decimal UID under the UUID root
// from the seed and instance coordinates.
func deterministicUID(kind string, seed uint64, n int) string {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%s_%d_%d", kind, seed, n) // hash.Write never returns an error
	return fmt.Sprintf("2.25.%d", h.Sum64())
}
